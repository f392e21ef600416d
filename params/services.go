package params

import (
	"math"

	"github.com/routekit/routekit/fault"
)

// Nearest is the parameter bundle of the nearest service.
type Nearest struct {
	Base
	numberOfResults uint
}

// NewNearest creates a nearest bundle returning one result by default.
func NewNearest() *Nearest {
	return &Nearest{Base: newBase(), numberOfResults: 1}
}

// SetNumberOfResults requests up to n snapped candidates.
func (p *Nearest) SetNumberOfResults(n uint) error {
	if n == 0 {
		return fault.New(fault.InvalidArgument, "number of results must be positive")
	}
	p.numberOfResults = n
	return nil
}

// NumberOfResults returns the requested candidate count.
func (p *Nearest) NumberOfResults() uint { return p.numberOfResults }

// Table is the parameter bundle of the table service.
type Table struct {
	Base
	sources            []int
	destinations       []int
	annotations        TableAnnotations
	fallbackSpeed      float64
	fallbackCoordinate FallbackCoordinate
	scaleFactor        float64
}

// NewTable creates a table bundle computing durations over all coordinates.
func NewTable() *Table {
	return &Table{Base: newBase(), annotations: TableAnnotationsDuration, scaleFactor: 1}
}

// AddSource marks the coordinate at index as a matrix row. The coordinate
// must already have been added.
func (p *Table) AddSource(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.sources = append(p.sources, index)
	return nil
}

// AddDestination marks the coordinate at index as a matrix column. The
// coordinate must already have been added.
func (p *Table) AddDestination(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	p.destinations = append(p.destinations, index)
	return nil
}

// SetAnnotations selects which matrices the query computes.
func (p *Table) SetAnnotations(a TableAnnotations) error {
	if a&^TableAnnotationsAll != 0 {
		return fault.Newf(fault.InvalidArgument, "unknown table annotations bits %#x", int(a))
	}
	p.annotations = a
	return nil
}

// SetFallbackSpeed estimates unroutable pairs as straight-line travel at the
// given speed in km/h.
func (p *Table) SetFallbackSpeed(speed float64) error {
	if speed <= 0 || math.IsNaN(speed) {
		return fault.Newf(fault.InvalidArgument, "fallback speed %v must be positive", speed)
	}
	p.fallbackSpeed = speed
	return nil
}

// SetFallbackCoordinate selects the coordinate fallback estimates start from.
func (p *Table) SetFallbackCoordinate(f FallbackCoordinate) error {
	if f != FallbackCoordinateInput && f != FallbackCoordinateSnapped {
		return fault.Newf(fault.InvalidArgument, "unknown fallback coordinate %d", f)
	}
	p.fallbackCoordinate = f
	return nil
}

// SetScaleFactor multiplies every duration cell by factor.
func (p *Table) SetScaleFactor(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) {
		return fault.Newf(fault.InvalidArgument, "scale factor %v must be positive", factor)
	}
	p.scaleFactor = factor
	return nil
}

// Sources returns the marked row indices; empty means all coordinates.
func (p *Table) Sources() []int { return p.sources }

// Destinations returns the marked column indices; empty means all.
func (p *Table) Destinations() []int { return p.destinations }

// Annotations returns the requested matrix kinds.
func (p *Table) Annotations() TableAnnotations { return p.annotations }

// FallbackSpeed returns the fallback speed, zero when unset.
func (p *Table) FallbackSpeed() float64 { return p.fallbackSpeed }

// FallbackCoordinate returns the fallback coordinate choice.
func (p *Table) FallbackCoordinate() FallbackCoordinate { return p.fallbackCoordinate }

// ScaleFactor returns the duration scale factor.
func (p *Table) ScaleFactor() float64 { return p.scaleFactor }

// Match is the parameter bundle of the map-matching service.
type Match struct {
	Base
	routeOptions
	timestamps []int64
	gaps       Gaps
	tidy       bool
}

// NewMatch creates a match bundle with engine defaults.
func NewMatch() *Match {
	return &Match{Base: newBase()}
}

// AddTimestamp appends a UNIX timestamp aligned with the coordinate list.
// Timestamps must be added in non-decreasing order.
func (p *Match) AddTimestamp(ts int64) error {
	if ts < 0 {
		return fault.Newf(fault.InvalidArgument, "timestamp %d must not be negative", ts)
	}
	if n := len(p.timestamps); n > 0 && p.timestamps[n-1] > ts {
		return fault.Newf(fault.InvalidArgument, "timestamp %d breaks monotonic order", ts)
	}
	p.timestamps = append(p.timestamps, ts)
	return nil
}

// SetGaps selects how timestamp gaps split the trace.
func (p *Match) SetGaps(g Gaps) error {
	if g != GapsSplit && g != GapsIgnore {
		return fault.Newf(fault.InvalidArgument, "unknown gaps policy %d", g)
	}
	p.gaps = g
	return nil
}

// SetTidy lets the engine drop obvious trace outliers before matching.
func (p *Match) SetTidy(on bool) { p.tidy = on }

// Timestamps returns the trace timestamps in insertion order.
func (p *Match) Timestamps() []int64 { return p.timestamps }

// Gaps returns the gap policy.
func (p *Match) Gaps() Gaps { return p.gaps }

// Tidy reports whether trace tidying was requested.
func (p *Match) Tidy() bool { return p.tidy }

// Trip is the parameter bundle of the trip service.
type Trip struct {
	Base
	routeOptions
	roundtrip   bool
	source      TripSource
	destination TripDestination
}

// NewTrip creates a trip bundle for a round trip from any coordinate.
func NewTrip() *Trip {
	return &Trip{Base: newBase(), roundtrip: true}
}

// SetRoundtrip toggles returning to the start.
func (p *Trip) SetRoundtrip(on bool) { p.roundtrip = on }

// SetSource fixes the first stop.
func (p *Trip) SetSource(s TripSource) error {
	if s != TripSourceAny && s != TripSourceFirst {
		return fault.Newf(fault.InvalidArgument, "unknown trip source %d", s)
	}
	p.source = s
	return nil
}

// SetDestination fixes the last stop.
func (p *Trip) SetDestination(d TripDestination) error {
	if d != TripDestinationAny && d != TripDestinationLast {
		return fault.Newf(fault.InvalidArgument, "unknown trip destination %d", d)
	}
	p.destination = d
	return nil
}

// Roundtrip reports whether the trip returns to the start.
func (p *Trip) Roundtrip() bool { return p.roundtrip }

// Source returns the first-stop policy.
func (p *Trip) Source() TripSource { return p.source }

// Destination returns the last-stop policy.
func (p *Trip) Destination() TripDestination { return p.destination }

// Tile zoom bounds: the vector-tile plugin serves detail tiles only.
const (
	MinTileZoom = 12
	MaxTileZoom = 20
)

// Tile is the parameter bundle of the vector-tile service, addressing one
// tile in the usual x/y/z scheme.
type Tile struct {
	x, y, z uint32
	zSet    bool
}

// NewTile creates an empty tile bundle; z must be set before x or y can be
// bounds checked.
func NewTile() *Tile {
	return &Tile{}
}

// SetZ selects the zoom level.
func (p *Tile) SetZ(z uint32) error {
	if z < MinTileZoom || z > MaxTileZoom {
		return fault.Newf(fault.InvalidArgument, "zoom %d out of range [%d, %d]", z, MinTileZoom, MaxTileZoom)
	}
	p.z = z
	p.zSet = true
	return nil
}

// SetX selects the tile column for the current zoom.
func (p *Tile) SetX(x uint32) error {
	if !p.zSet {
		return fault.New(fault.InvalidArgument, "zoom must be set before x")
	}
	if x >= 1<<p.z {
		return fault.Newf(fault.InvalidArgument, "x %d out of range for zoom %d", x, p.z)
	}
	p.x = x
	return nil
}

// SetY selects the tile row for the current zoom.
func (p *Tile) SetY(y uint32) error {
	if !p.zSet {
		return fault.New(fault.InvalidArgument, "zoom must be set before y")
	}
	if y >= 1<<p.z {
		return fault.Newf(fault.InvalidArgument, "y %d out of range for zoom %d", y, p.z)
	}
	p.y = y
	return nil
}

// X returns the tile column.
func (p *Tile) X() uint32 { return p.x }

// Y returns the tile row.
func (p *Tile) Y() uint32 { return p.y }

// Z returns the zoom level.
func (p *Tile) Z() uint32 { return p.z }
