package response

import (
	"math"

	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Nearest is the view over a nearest service result: a flat list of snap
// candidates under "waypoints".
type Nearest struct {
	h         *Handle
	waypoints waypointList
}

// NewNearest wraps a nearest result document.
func NewNearest(doc jsonval.Document) (*Nearest, error) {
	h, err := newHandle(doc, params.GeometriesPolyline)
	if err != nil {
		return nil, err
	}
	return &Nearest{h: h, waypoints: newWaypointList(h, "waypoints")}, nil
}

// JSON renders the whole document to compact JSON text.
func (n *Nearest) JSON() (*Blob, error) { return n.handle().json() }

// DataVersion reads the optional dataset timestamp.
func (n *Nearest) DataVersion() (string, bool, error) { return n.handle().dataVersion() }

func (n *Nearest) handle() *Handle {
	if n == nil {
		return nil
	}
	return n.h
}

// WaypointCount returns the number of snap candidates.
func (n *Nearest) WaypointCount() (int, error) {
	if n == nil {
		return -1, errNilHandle()
	}
	return n.waypoints.count()
}

// WaypointName returns the road name of a snap candidate.
func (n *Nearest) WaypointName(waypointIndex int) (string, error) {
	if n == nil {
		return "", errNilHandle()
	}
	return n.waypoints.name(waypointIndex)
}

// WaypointHint reads the optional snapping hint of a candidate.
func (n *Nearest) WaypointHint(waypointIndex int) (string, bool, error) {
	if n == nil {
		return "", false, errNilHandle()
	}
	return n.waypoints.hint(waypointIndex)
}

// WaypointDistance returns the snap distance in meters.
func (n *Nearest) WaypointDistance(waypointIndex int) (float64, error) {
	if n == nil {
		return math.NaN(), errNilHandle()
	}
	return n.waypoints.distance(waypointIndex)
}

// WaypointLocation returns the snapped position of a candidate.
func (n *Nearest) WaypointLocation(waypointIndex int) (params.Coordinate, error) {
	if n == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return n.waypoints.location(waypointIndex)
}

// WaypointNodes returns the pair of graph node ids the candidate snapped
// between.
func (n *Nearest) WaypointNodes(waypointIndex int) ([]uint64, error) {
	if n == nil {
		return nil, errNilHandle()
	}
	return n.waypoints.nodes(waypointIndex)
}
