package params

// Output format of an engine query. Only JSON is supported; the flatbuffers
// format of some engines is deliberately rejected.
type Format int

const (
	FormatJSON Format = iota
)

// Snapping controls which edges a coordinate may snap to.
type Snapping int

const (
	SnappingDefault Snapping = iota
	SnappingAny
)

func (s Snapping) String() string {
	if s == SnappingAny {
		return "any"
	}
	return "default"
}

// Approach restricts the side of the road a coordinate is approached from.
type Approach int

const (
	ApproachCurb Approach = iota
	ApproachUnrestricted
	ApproachOpposite
)

func (a Approach) String() string {
	switch a {
	case ApproachCurb:
		return "curb"
	case ApproachOpposite:
		return "opposite"
	default:
		return "unrestricted"
	}
}

// Geometries selects the on-the-wire shape of geometry fields. The choice is
// recorded on the response handle so accessors can interpret the field's
// variant correctly.
type Geometries int

const (
	GeometriesPolyline Geometries = iota
	GeometriesPolyline6
	GeometriesGeoJSON
)

func (g Geometries) String() string {
	switch g {
	case GeometriesPolyline6:
		return "polyline6"
	case GeometriesGeoJSON:
		return "geojson"
	default:
		return "polyline"
	}
}

// Overview selects how much route overview geometry the engine returns.
type Overview int

const (
	OverviewSimplified Overview = iota
	OverviewFull
	OverviewFalse
)

func (o Overview) String() string {
	switch o {
	case OverviewFull:
		return "full"
	case OverviewFalse:
		return "false"
	default:
		return "simplified"
	}
}

// Annotations is a bit set of per-segment metadata kinds.
type Annotations int

const (
	AnnotationsNone        Annotations = 0
	AnnotationsDuration    Annotations = 1 << 0
	AnnotationsNodes       Annotations = 1 << 1
	AnnotationsDistance    Annotations = 1 << 2
	AnnotationsWeight      Annotations = 1 << 3
	AnnotationsDatasources Annotations = 1 << 4
	AnnotationsSpeed       Annotations = 1 << 5
	AnnotationsAll         Annotations = AnnotationsDuration | AnnotationsNodes |
		AnnotationsDistance | AnnotationsWeight | AnnotationsDatasources | AnnotationsSpeed
)

// TableAnnotations selects which matrices a table query computes.
type TableAnnotations int

const (
	TableAnnotationsNone     TableAnnotations = 0
	TableAnnotationsDuration TableAnnotations = 1 << 0
	TableAnnotationsDistance TableAnnotations = 1 << 1
	TableAnnotationsAll      TableAnnotations = TableAnnotationsDuration | TableAnnotationsDistance
)

// FallbackCoordinate selects which coordinate a table fallback estimate is
// measured from.
type FallbackCoordinate int

const (
	FallbackCoordinateInput FallbackCoordinate = iota
	FallbackCoordinateSnapped
)

func (f FallbackCoordinate) String() string {
	if f == FallbackCoordinateSnapped {
		return "snapped"
	}
	return "input"
}

// Gaps controls how a match query treats gaps between trace timestamps.
type Gaps int

const (
	GapsSplit Gaps = iota
	GapsIgnore
)

func (g Gaps) String() string {
	if g == GapsIgnore {
		return "ignore"
	}
	return "split"
}

// TripSource fixes the first stop of a trip.
type TripSource int

const (
	TripSourceAny TripSource = iota
	TripSourceFirst
)

func (t TripSource) String() string {
	if t == TripSourceFirst {
		return "first"
	}
	return "any"
}

// TripDestination fixes the last stop of a trip.
type TripDestination int

const (
	TripDestinationAny TripDestination = iota
	TripDestinationLast
)

func (t TripDestination) String() string {
	if t == TripDestinationLast {
		return "last"
	}
	return "any"
}
