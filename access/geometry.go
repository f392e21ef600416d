package access

import (
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
)

// The geometry field is polymorphic by design: the caller's earlier
// geometry-format choice decides whether the engine writes a polyline-encoded
// String or a GeoJSON Object. The two accessors below recognize both shapes
// and fail UnsupportedGeometry on a mismatch instead of guessing.

// GeometryCoordinates returns the coordinate array of a GeoJSON geometry. A
// String geometry is polyline-encoded and coordinate-level access is
// impossible; callers get directed to GeometryPolyline instead.
func GeometryCoordinates(geometry jsonval.Value) ([]jsonval.Value, error) {
	switch geometry.Kind() {
	case jsonval.StringKind:
		return nil, fault.New(fault.UnsupportedGeometry, "geometry is polyline-encoded, use the polyline accessor")
	case jsonval.ObjectKind:
		obj, _ := geometry.Object()
		coords, ok := obj.Get("coordinates")
		if !ok {
			return nil, fault.New(fault.UnsupportedGeometry, "GeoJSON geometry has no coordinates array")
		}
		items, ok := coords.Array()
		if !ok {
			return nil, fault.Newf(fault.UnsupportedGeometry, "GeoJSON coordinates are %s, expected array", coords.Kind())
		}
		return items, nil
	default:
		return nil, fault.Newf(fault.UnsupportedGeometry, "geometry is %s, expected string or object", geometry.Kind())
	}
}

// GeometryPolyline returns the polyline-encoded text of a String geometry.
func GeometryPolyline(geometry jsonval.Value) (string, error) {
	s, ok := geometry.Str()
	if !ok {
		return "", fault.Newf(fault.UnsupportedGeometry, "geometry is %s, expected polyline string", geometry.Kind())
	}
	return s, nil
}
