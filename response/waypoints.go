package response

import (
	"github.com/routekit/routekit/access"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// waypointList is the accessor core for the snapped-coordinate arrays every
// service carries: waypoints, tracepoints, sources, destinations. Only the
// key differs; the element shape is shared.
type waypointList struct {
	h   *Handle
	hop access.Hop
}

func newWaypointList(h *Handle, key string) waypointList {
	return waypointList{h: h, hop: access.Hop{Key: key, Missing: fault.Missing(key), Bounds: fault.IndexOutOfBounds}}
}

func (l waypointList) count() (int, error) {
	return guardInt(func() (int, error) {
		return access.CollectionLen(l.h.doc, l.hop)
	})
}

func (l waypointList) at(i int) (jsonval.Value, error) {
	obj, ok := l.h.doc.Object()
	if !ok {
		return jsonval.Value{}, fault.Newf(fault.Exception, "document is %s, expected object", l.h.doc.Kind())
	}
	member, ok := obj.Get(l.hop.Key)
	if !ok {
		return jsonval.Value{}, fault.Newf(l.hop.Missing, "field %q not found", l.hop.Key)
	}
	return access.Element(member, i)
}

func (l waypointList) name(i int) (string, error) {
	return guardStr(func() (string, error) {
		wp, err := l.at(i)
		if err != nil {
			return "", err
		}
		return access.FieldStr(wp, "name")
	})
}

// hint is optional: the query may have disabled hint generation.
func (l waypointList) hint(i int) (string, bool, error) {
	wp, err := l.at(i)
	if err != nil {
		return "", false, fault.Coerce(err)
	}
	return access.OptionalStr(wp, "hint")
}

func (l waypointList) distance(i int) (float64, error) {
	return guardNum(func() (float64, error) {
		wp, err := l.at(i)
		if err != nil {
			return 0, err
		}
		return access.FieldNum(wp, "distance")
	})
}

func (l waypointList) location(i int) (params.Coordinate, error) {
	return guardCoord(func() (params.Coordinate, error) {
		wp, err := l.at(i)
		if err != nil {
			return params.Coordinate{}, err
		}
		location, err := access.Field(wp, "location")
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

// index reads one of the integer cross-reference fields (trips_index,
// waypoint_index, matchings_index, alternatives_count).
func (l waypointList) index(i int, key string) (int, error) {
	return guardInt(func() (int, error) {
		wp, err := l.at(i)
		if err != nil {
			return 0, err
		}
		f, err := access.FieldNum(wp, key)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	})
}

// nodes reads the node pair a nearest candidate snapped onto.
func (l waypointList) nodes(i int) ([]uint64, error) {
	return fault.Guard[[]uint64](nil, func() ([]uint64, error) {
		wp, err := l.at(i)
		if err != nil {
			return nil, err
		}
		items, err := access.FieldArr(wp, "nodes")
		if err != nil {
			return nil, err
		}
		nodes := make([]uint64, len(items))
		for idx, item := range items {
			f, err := access.Num(item)
			if err != nil {
				return nil, err
			}
			nodes[idx] = uint64(f)
		}
		return nodes, nil
	})
}
