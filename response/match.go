package response

import (
	"math"

	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Match is the view over a map-matching result: matchings[i].legs[j].steps[k]
// plus the tracepoint list. Tracepoints differ from plain waypoints in one
// way: an input point that could not be matched appears as a null entry.
type Match struct {
	h           *Handle
	core        routeCore
	tracepoints waypointList
}

// NewMatch wraps a match result document.
func NewMatch(doc jsonval.Document, geometries params.Geometries) (*Match, error) {
	h, err := newHandle(doc, geometries)
	if err != nil {
		return nil, err
	}
	return &Match{h: h, core: newRouteCore(h, "matchings"), tracepoints: newWaypointList(h, "tracepoints")}, nil
}

// JSON renders the whole document to compact JSON text.
func (m *Match) JSON() (*Blob, error) { return m.handle().json() }

// DataVersion reads the optional dataset timestamp.
func (m *Match) DataVersion() (string, bool, error) { return m.handle().dataVersion() }

// Geometries returns the geometry encoding of the document.
func (m *Match) Geometries() params.Geometries { return m.handle().Geometries() }

func (m *Match) handle() *Handle {
	if m == nil {
		return nil
	}
	return m.h
}

// Count returns the number of matchings.
func (m *Match) Count() (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.core.count()
}

// Distance returns one matching's distance in meters.
func (m *Match) Distance(matchingIndex int) (float64, error) {
	if m == nil {
		return math.NaN(), errNilHandle()
	}
	return m.core.routeNum(matchingIndex, "distance")
}

// Duration returns one matching's duration in seconds.
func (m *Match) Duration(matchingIndex int) (float64, error) {
	if m == nil {
		return math.NaN(), errNilHandle()
	}
	return m.core.routeNum(matchingIndex, "duration")
}

// Confidence returns the matching confidence in [0, 1].
func (m *Match) Confidence(matchingIndex int) (float64, error) {
	if m == nil {
		return math.NaN(), errNilHandle()
	}
	return m.core.routeNum(matchingIndex, "confidence")
}

// GeometryPolyline returns the polyline-encoded matching geometry.
func (m *Match) GeometryPolyline(matchingIndex int) (string, error) {
	if m == nil {
		return "", errNilHandle()
	}
	return m.core.geometryPolyline(matchingIndex)
}

// GeometryCoordinates returns the GeoJSON matching coordinates.
func (m *Match) GeometryCoordinates(matchingIndex int) ([]params.Coordinate, error) {
	if m == nil {
		return nil, errNilHandle()
	}
	return m.core.geometryCoordinates(matchingIndex)
}

// LegCount returns the number of legs of one matching.
func (m *Match) LegCount(matchingIndex int) (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.core.legCount(matchingIndex)
}

// LegDistance returns one leg's distance in meters.
func (m *Match) LegDistance(matchingIndex, legIndex int) (float64, error) {
	if m == nil {
		return math.NaN(), errNilHandle()
	}
	return m.core.legNum(matchingIndex, legIndex, "distance")
}

// LegDuration returns one leg's duration in seconds.
func (m *Match) LegDuration(matchingIndex, legIndex int) (float64, error) {
	if m == nil {
		return math.NaN(), errNilHandle()
	}
	return m.core.legNum(matchingIndex, legIndex, "duration")
}

// TracepointCount returns the number of tracepoint slots, unmatched nulls
// included.
func (m *Match) TracepointCount() (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.tracepoints.count()
}

// TracepointValid reports whether an input point was matched, under the
// tri-state convention: 1 matched, 0 unmatched (null slot), -1 with an
// error set.
func (m *Match) TracepointValid(tracepointIndex int) (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	tp, err := m.tracepoints.at(tracepointIndex)
	if err != nil {
		return -1, fault.Coerce(err)
	}
	if tp.IsNull() {
		return 0, nil
	}
	if _, ok := tp.Object(); !ok {
		return -1, fault.Newf(fault.Exception, "tracepoint is %s, expected object or null", tp.Kind())
	}
	return 1, nil
}

// TracepointName returns the road name a tracepoint snapped onto. Fails on
// unmatched (null) slots.
func (m *Match) TracepointName(tracepointIndex int) (string, error) {
	if m == nil {
		return "", errNilHandle()
	}
	return m.tracepoints.name(tracepointIndex)
}

// TracepointLocation returns the matched position of a tracepoint. Fails on
// unmatched (null) slots.
func (m *Match) TracepointLocation(tracepointIndex int) (params.Coordinate, error) {
	if m == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return m.tracepoints.location(tracepointIndex)
}

// TracepointMatchingsIndex returns the index of the matching this tracepoint
// belongs to. Fails on unmatched (null) slots.
func (m *Match) TracepointMatchingsIndex(tracepointIndex int) (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.tracepoints.index(tracepointIndex, "matchings_index")
}

// TracepointWaypointIndex returns the position of this tracepoint within its
// matching. Fails on unmatched (null) slots.
func (m *Match) TracepointWaypointIndex(tracepointIndex int) (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.tracepoints.index(tracepointIndex, "waypoint_index")
}

// TracepointAlternativesCount returns the number of alternatives that were
// considered at this tracepoint. Fails on unmatched (null) slots.
func (m *Match) TracepointAlternativesCount(tracepointIndex int) (int, error) {
	if m == nil {
		return -1, errNilHandle()
	}
	return m.tracepoints.index(tracepointIndex, "alternatives_count")
}
