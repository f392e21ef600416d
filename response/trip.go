package response

import (
	"math"

	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Trip is the view over a trip service result: trips[i].legs[j].steps[k]
// plus the waypoints with their trip cross-references.
type Trip struct {
	h         *Handle
	core      routeCore
	waypoints waypointList
}

// NewTrip wraps a trip result document.
func NewTrip(doc jsonval.Document, geometries params.Geometries) (*Trip, error) {
	h, err := newHandle(doc, geometries)
	if err != nil {
		return nil, err
	}
	return &Trip{h: h, core: newRouteCore(h, "trips"), waypoints: newWaypointList(h, "waypoints")}, nil
}

// JSON renders the whole document to compact JSON text.
func (t *Trip) JSON() (*Blob, error) { return t.handle().json() }

// DataVersion reads the optional dataset timestamp.
func (t *Trip) DataVersion() (string, bool, error) { return t.handle().dataVersion() }

// Geometries returns the geometry encoding of the document.
func (t *Trip) Geometries() params.Geometries { return t.handle().Geometries() }

func (t *Trip) handle() *Handle {
	if t == nil {
		return nil
	}
	return t.h
}

// Count returns the number of trips.
func (t *Trip) Count() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.core.count()
}

// Distance returns one trip's distance in meters.
func (t *Trip) Distance(tripIndex int) (float64, error) {
	if t == nil {
		return math.NaN(), errNilHandle()
	}
	return t.core.routeNum(tripIndex, "distance")
}

// Duration returns one trip's duration in seconds.
func (t *Trip) Duration(tripIndex int) (float64, error) {
	if t == nil {
		return math.NaN(), errNilHandle()
	}
	return t.core.routeNum(tripIndex, "duration")
}

// GeometryPolyline returns the polyline-encoded trip geometry.
func (t *Trip) GeometryPolyline(tripIndex int) (string, error) {
	if t == nil {
		return "", errNilHandle()
	}
	return t.core.geometryPolyline(tripIndex)
}

// GeometryCoordinates returns the GeoJSON trip coordinates.
func (t *Trip) GeometryCoordinates(tripIndex int) ([]params.Coordinate, error) {
	if t == nil {
		return nil, errNilHandle()
	}
	return t.core.geometryCoordinates(tripIndex)
}

// LegCount returns the number of legs of one trip.
func (t *Trip) LegCount(tripIndex int) (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.core.legCount(tripIndex)
}

// LegDistance returns one leg's distance in meters.
func (t *Trip) LegDistance(tripIndex, legIndex int) (float64, error) {
	if t == nil {
		return math.NaN(), errNilHandle()
	}
	return t.core.legNum(tripIndex, legIndex, "distance")
}

// LegDuration returns one leg's duration in seconds.
func (t *Trip) LegDuration(tripIndex, legIndex int) (float64, error) {
	if t == nil {
		return math.NaN(), errNilHandle()
	}
	return t.core.legNum(tripIndex, legIndex, "duration")
}

// WaypointCount returns the number of input waypoints.
func (t *Trip) WaypointCount() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.waypoints.count()
}

// WaypointName returns the road name a waypoint snapped onto.
func (t *Trip) WaypointName(waypointIndex int) (string, error) {
	if t == nil {
		return "", errNilHandle()
	}
	return t.waypoints.name(waypointIndex)
}

// WaypointLocation returns the snapped position of a waypoint.
func (t *Trip) WaypointLocation(waypointIndex int) (params.Coordinate, error) {
	if t == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return t.waypoints.location(waypointIndex)
}

// WaypointTripsIndex returns the index of the trip this waypoint was
// assigned to.
func (t *Trip) WaypointTripsIndex(waypointIndex int) (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.waypoints.index(waypointIndex, "trips_index")
}

// WaypointWaypointIndex returns the visiting position of this waypoint
// within its trip.
func (t *Trip) WaypointWaypointIndex(waypointIndex int) (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.waypoints.index(waypointIndex, "waypoint_index")
}
