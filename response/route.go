package response

import (
	"math"

	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Route is the view over a route service result: routes[i].legs[j].steps[k]
// plus the snapped waypoints.
type Route struct {
	h         *Handle
	core      routeCore
	waypoints waypointList
}

// NewRoute wraps a route result document. The geometries argument records
// the geometry encoding the query requested.
func NewRoute(doc jsonval.Document, geometries params.Geometries) (*Route, error) {
	h, err := newHandle(doc, geometries)
	if err != nil {
		return nil, err
	}
	return &Route{h: h, core: newRouteCore(h, "routes"), waypoints: newWaypointList(h, "waypoints")}, nil
}

// JSON renders the whole document to compact JSON text.
func (r *Route) JSON() (*Blob, error) { return r.handle().json() }

// DataVersion reads the optional dataset timestamp.
func (r *Route) DataVersion() (string, bool, error) { return r.handle().dataVersion() }

// Geometries returns the geometry encoding of the document.
func (r *Route) Geometries() params.Geometries { return r.handle().Geometries() }

func (r *Route) handle() *Handle {
	if r == nil {
		return nil
	}
	return r.h
}

// Count returns the number of routes, alternatives included.
func (r *Route) Count() (int, error) {
	if r == nil {
		return -1, errNilHandle()
	}
	return r.core.count()
}

// Distance returns the total route distance in meters.
func (r *Route) Distance(routeIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.routeNum(routeIndex, "distance")
}

// Duration returns the total route duration in seconds.
func (r *Route) Duration(routeIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.routeNum(routeIndex, "duration")
}

// Weight returns the route weight under the active weight metric.
func (r *Route) Weight(routeIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.routeNum(routeIndex, "weight")
}

// WeightName returns the name of the weight metric.
func (r *Route) WeightName(routeIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.routeStr(routeIndex, "weight_name")
}

// GeometryPolyline returns the polyline-encoded overview geometry. Fails
// UnsupportedGeometry when the query asked for GeoJSON.
func (r *Route) GeometryPolyline(routeIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.geometryPolyline(routeIndex)
}

// GeometryCoordinates returns the GeoJSON overview coordinates. Fails
// UnsupportedGeometry when the query asked for a polyline encoding.
func (r *Route) GeometryCoordinates(routeIndex int) ([]params.Coordinate, error) {
	if r == nil {
		return nil, errNilHandle()
	}
	return r.core.geometryCoordinates(routeIndex)
}

// LegCount returns the number of legs of one route.
func (r *Route) LegCount(routeIndex int) (int, error) {
	if r == nil {
		return -1, errNilHandle()
	}
	return r.core.legCount(routeIndex)
}

// LegDistance returns one leg's distance in meters.
func (r *Route) LegDistance(routeIndex, legIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.legNum(routeIndex, legIndex, "distance")
}

// LegDuration returns one leg's duration in seconds.
func (r *Route) LegDuration(routeIndex, legIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.legNum(routeIndex, legIndex, "duration")
}

// LegSummary returns one leg's road name summary.
func (r *Route) LegSummary(routeIndex, legIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.legStr(routeIndex, legIndex, "summary")
}

// StepCount returns the number of steps of one leg. Fails NoSteps when the
// query did not request step instructions.
func (r *Route) StepCount(routeIndex, legIndex int) (int, error) {
	if r == nil {
		return -1, errNilHandle()
	}
	return r.core.stepCount(routeIndex, legIndex)
}

// StepName returns the road name of one step.
func (r *Route) StepName(routeIndex, legIndex, stepIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.stepStr(routeIndex, legIndex, stepIndex, "name")
}

// StepMode returns the travel mode of one step.
func (r *Route) StepMode(routeIndex, legIndex, stepIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.stepStr(routeIndex, legIndex, stepIndex, "mode")
}

// StepRef reads the optional road reference of one step.
func (r *Route) StepRef(routeIndex, legIndex, stepIndex int) (string, bool, error) {
	if r == nil {
		return "", false, errNilHandle()
	}
	return r.core.stepOptionalStr(routeIndex, legIndex, stepIndex, "ref")
}

// StepPronunciation reads the optional name pronunciation of one step.
func (r *Route) StepPronunciation(routeIndex, legIndex, stepIndex int) (string, bool, error) {
	if r == nil {
		return "", false, errNilHandle()
	}
	return r.core.stepOptionalStr(routeIndex, legIndex, stepIndex, "pronunciation")
}

// StepDistance returns one step's distance in meters.
func (r *Route) StepDistance(routeIndex, legIndex, stepIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.stepNum(routeIndex, legIndex, stepIndex, "distance")
}

// StepDuration returns one step's duration in seconds.
func (r *Route) StepDuration(routeIndex, legIndex, stepIndex int) (float64, error) {
	if r == nil {
		return math.NaN(), errNilHandle()
	}
	return r.core.stepNum(routeIndex, legIndex, stepIndex, "duration")
}

// StepGeometryPolyline returns one step's polyline-encoded geometry.
func (r *Route) StepGeometryPolyline(routeIndex, legIndex, stepIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.stepGeometryPolyline(routeIndex, legIndex, stepIndex)
}

// StepGeometryCoordinates returns one step's GeoJSON coordinates.
func (r *Route) StepGeometryCoordinates(routeIndex, legIndex, stepIndex int) ([]params.Coordinate, error) {
	if r == nil {
		return nil, errNilHandle()
	}
	return r.core.stepGeometryCoordinates(routeIndex, legIndex, stepIndex)
}

// StepManeuverType returns the maneuver type of one step.
func (r *Route) StepManeuverType(routeIndex, legIndex, stepIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.core.stepManeuverStr(routeIndex, legIndex, stepIndex, "type")
}

// StepManeuverLocation returns the maneuver position of one step.
func (r *Route) StepManeuverLocation(routeIndex, legIndex, stepIndex int) (params.Coordinate, error) {
	if r == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return r.core.stepManeuverLocation(routeIndex, legIndex, stepIndex)
}

// StepIntersectionEntry reads one entry flag of one step intersection under
// the tri-state convention: 1 true, 0 false, -1 with an error set.
func (r *Route) StepIntersectionEntry(routeIndex, legIndex, stepIndex, intersection, entry int) (int, error) {
	if r == nil {
		return -1, errNilHandle()
	}
	return r.core.stepIntersectionEntry(routeIndex, legIndex, stepIndex, intersection, entry)
}

// WaypointCount returns the number of snapped waypoints.
func (r *Route) WaypointCount() (int, error) {
	if r == nil {
		return -1, errNilHandle()
	}
	return r.waypoints.count()
}

// WaypointName returns the road name a waypoint snapped onto.
func (r *Route) WaypointName(waypointIndex int) (string, error) {
	if r == nil {
		return "", errNilHandle()
	}
	return r.waypoints.name(waypointIndex)
}

// WaypointHint reads the optional snapping hint of a waypoint.
func (r *Route) WaypointHint(waypointIndex int) (string, bool, error) {
	if r == nil {
		return "", false, errNilHandle()
	}
	return r.waypoints.hint(waypointIndex)
}

// WaypointLocation returns the snapped position of a waypoint.
func (r *Route) WaypointLocation(waypointIndex int) (params.Coordinate, error) {
	if r == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return r.waypoints.location(waypointIndex)
}
