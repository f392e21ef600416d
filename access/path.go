package access

import (
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
)

// A Hop describes one level of an array descent below a document root: the
// object field holding the array, and the codes reported when the field is
// absent or the index is out of range. Chains like routes[i].legs[j].steps[k]
// differ between services only in the top-level key, so the whole descent is
// data-driven rather than written once per service.
type Hop struct {
	Key     string
	Missing fault.Code
	Bounds  fault.Code
}

// Descent for route-shaped documents. Route, Match and Trip responses all
// use it; only the first key differs (routes, matchings, trips).
func RouteHops(topKey string) []Hop {
	return []Hop{
		{Key: topKey, Missing: fault.NoRoute, Bounds: fault.RouteIndexOutOfBounds},
		{Key: "legs", Missing: fault.NoLegs, Bounds: fault.LegIndexOutOfBounds},
		{Key: "steps", Missing: fault.NoSteps, Bounds: fault.StepIndexOutOfBounds},
	}
}

// Descend walks root through the first len(indices) hops: for each hop it
// looks up the hop's field, expects an array, and takes the corresponding
// index. Each level fails with its own codes, so callers can localize the
// exact hop that broke.
func Descend(root jsonval.Value, hops []Hop, indices ...int) (jsonval.Value, error) {
	if len(indices) > len(hops) {
		return jsonval.Value{}, fault.Newf(fault.Exception, "descent of %d levels exceeds schema depth %d", len(indices), len(hops))
	}
	current := root
	for level, index := range indices {
		hop := hops[level]
		obj, ok := current.Object()
		if !ok {
			return jsonval.Value{}, fault.Newf(fault.Exception, "expected object around %q, found %s", hop.Key, current.Kind())
		}
		member, ok := obj.Get(hop.Key)
		if !ok {
			return jsonval.Value{}, fault.Newf(hop.Missing, "field %q not found", hop.Key)
		}
		items, ok := member.Array()
		if !ok {
			return jsonval.Value{}, fault.Newf(fault.Exception, "field %q is %s, expected array", hop.Key, member.Kind())
		}
		if index < 0 || index >= len(items) {
			return jsonval.Value{}, fault.Newf(hop.Bounds, "%s index %d out of range, length %d", hop.Key, index, len(items))
		}
		current = items[index]
	}
	return current, nil
}

// CollectionLen returns the length of the array held by the hop's field of
// root, reporting the hop's missing code when the field is absent.
func CollectionLen(root jsonval.Value, hop Hop) (int, error) {
	obj, ok := root.Object()
	if !ok {
		return -1, fault.Newf(fault.Exception, "expected object around %q, found %s", hop.Key, root.Kind())
	}
	member, ok := obj.Get(hop.Key)
	if !ok {
		return -1, fault.Newf(hop.Missing, "field %q not found", hop.Key)
	}
	items, ok := member.Array()
	if !ok {
		return -1, fault.Newf(fault.Exception, "field %q is %s, expected array", hop.Key, member.Kind())
	}
	return len(items), nil
}
