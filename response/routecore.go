package response

import (
	"github.com/routekit/routekit/access"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// routeCore is the one accessor implementation behind the Route, Match and
// Trip views. The three services return identically shaped route documents
// under different top-level keys (routes, matchings, trips), so the view
// differences collapse into the hop schema.
type routeCore struct {
	h    *Handle
	hops []access.Hop
}

func newRouteCore(h *Handle, topKey string) routeCore {
	return routeCore{h: h, hops: access.RouteHops(topKey)}
}

func (c routeCore) count() (int, error) {
	return guardInt(func() (int, error) {
		return access.CollectionLen(c.h.doc, c.hops[0])
	})
}

func (c routeCore) route(i int) (jsonval.Value, error) {
	return access.Descend(c.h.doc, c.hops, i)
}

func (c routeCore) leg(i, j int) (jsonval.Value, error) {
	return access.Descend(c.h.doc, c.hops, i, j)
}

func (c routeCore) step(i, j, k int) (jsonval.Value, error) {
	return access.Descend(c.h.doc, c.hops, i, j, k)
}

func (c routeCore) routeNum(i int, key string) (float64, error) {
	return guardNum(func() (float64, error) {
		route, err := c.route(i)
		if err != nil {
			return 0, err
		}
		return access.FieldNum(route, key)
	})
}

func (c routeCore) routeStr(i int, key string) (string, error) {
	return guardStr(func() (string, error) {
		route, err := c.route(i)
		if err != nil {
			return "", err
		}
		return access.FieldStr(route, key)
	})
}

func (c routeCore) legCount(i int) (int, error) {
	return guardInt(func() (int, error) {
		route, err := c.route(i)
		if err != nil {
			return 0, err
		}
		return access.CollectionLen(route, c.hops[1])
	})
}

func (c routeCore) legNum(i, j int, key string) (float64, error) {
	return guardNum(func() (float64, error) {
		leg, err := c.leg(i, j)
		if err != nil {
			return 0, err
		}
		return access.FieldNum(leg, key)
	})
}

func (c routeCore) legStr(i, j int, key string) (string, error) {
	return guardStr(func() (string, error) {
		leg, err := c.leg(i, j)
		if err != nil {
			return "", err
		}
		return access.FieldStr(leg, key)
	})
}

func (c routeCore) stepCount(i, j int) (int, error) {
	return guardInt(func() (int, error) {
		leg, err := c.leg(i, j)
		if err != nil {
			return 0, err
		}
		return access.CollectionLen(leg, c.hops[2])
	})
}

func (c routeCore) stepNum(i, j, k int, key string) (float64, error) {
	return guardNum(func() (float64, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return 0, err
		}
		return access.FieldNum(step, key)
	})
}

func (c routeCore) stepStr(i, j, k int, key string) (string, error) {
	return guardStr(func() (string, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return "", err
		}
		return access.FieldStr(step, key)
	})
}

// stepOptionalStr serves the cosmetic step fields (ref, pronunciation) whose
// absence is not a failure.
func (c routeCore) stepOptionalStr(i, j, k int, key string) (string, bool, error) {
	step, err := c.step(i, j, k)
	if err != nil {
		return "", false, fault.Coerce(err)
	}
	return access.OptionalStr(step, key)
}

func (c routeCore) geometry(i int) (jsonval.Value, error) {
	route, err := c.route(i)
	if err != nil {
		return jsonval.Value{}, err
	}
	return access.Field(route, "geometry")
}

func (c routeCore) geometryPolyline(i int) (string, error) {
	return guardStr(func() (string, error) {
		geom, err := c.geometry(i)
		if err != nil {
			return "", err
		}
		return access.GeometryPolyline(geom)
	})
}

func (c routeCore) geometryCoordinates(i int) ([]params.Coordinate, error) {
	return fault.Guard[[]params.Coordinate](nil, func() ([]params.Coordinate, error) {
		geom, err := c.geometry(i)
		if err != nil {
			return nil, err
		}
		items, err := access.GeometryCoordinates(geom)
		if err != nil {
			return nil, err
		}
		return coordinateList(items)
	})
}

func (c routeCore) stepGeometryPolyline(i, j, k int) (string, error) {
	return guardStr(func() (string, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return "", err
		}
		geom, err := access.Field(step, "geometry")
		if err != nil {
			return "", err
		}
		return access.GeometryPolyline(geom)
	})
}

func (c routeCore) stepGeometryCoordinates(i, j, k int) ([]params.Coordinate, error) {
	return fault.Guard[[]params.Coordinate](nil, func() ([]params.Coordinate, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return nil, err
		}
		geom, err := access.Field(step, "geometry")
		if err != nil {
			return nil, err
		}
		items, err := access.GeometryCoordinates(geom)
		if err != nil {
			return nil, err
		}
		return coordinateList(items)
	})
}

func (c routeCore) stepManeuverStr(i, j, k int, key string) (string, error) {
	return guardStr(func() (string, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return "", err
		}
		maneuver, err := access.Field(step, "maneuver")
		if err != nil {
			return "", err
		}
		return access.FieldStr(maneuver, key)
	})
}

func (c routeCore) stepManeuverLocation(i, j, k int) (params.Coordinate, error) {
	return guardCoord(func() (params.Coordinate, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return params.Coordinate{}, err
		}
		maneuver, err := access.Field(step, "maneuver")
		if err != nil {
			return params.Coordinate{}, err
		}
		location, err := access.Field(maneuver, "location")
		if err != nil {
			return params.Coordinate{}, err
		}
		lon, lat, err := access.LonLat(location)
		if err != nil {
			return params.Coordinate{}, err
		}
		return params.Coordinate{Longitude: lon, Latitude: lat}, nil
	})
}

// stepIntersectionEntry reads one entry flag of one step intersection under
// the tri-state convention.
func (c routeCore) stepIntersectionEntry(i, j, k, intersection, entry int) (int, error) {
	result, err := fault.Guard(-1, func() (int, error) {
		step, err := c.step(i, j, k)
		if err != nil {
			return -1, err
		}
		intersections, err := access.FieldArr(step, "intersections")
		if err != nil {
			return -1, err
		}
		if intersection < 0 || intersection >= len(intersections) {
			return -1, fault.Newf(fault.IndexOutOfBounds, "intersection index %d out of range, length %d", intersection, len(intersections))
		}
		entries, err := access.FieldArr(intersections[intersection], "entry")
		if err != nil {
			return -1, err
		}
		if entry < 0 || entry >= len(entries) {
			return -1, fault.Newf(fault.IndexOutOfBounds, "entry index %d out of range, length %d", entry, len(entries))
		}
		return access.TriBoolValue(entries[entry])
	})
	if err != nil {
		return -1, err
	}
	return result, nil
}

// coordinateList converts a GeoJSON coordinates array into typed pairs.
func coordinateList(items []jsonval.Value) ([]params.Coordinate, error) {
	coords := make([]params.Coordinate, len(items))
	for idx, item := range items {
		lon, lat, err := access.LonLat(item)
		if err != nil {
			return nil, err
		}
		coords[idx] = params.Coordinate{Longitude: lon, Latitude: lat}
	}
	return coords, nil
}
