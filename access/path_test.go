package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
)

const routeDoc = `{
	"routes": [
		{
			"distance": 1500.5,
			"legs": [
				{"steps": [{"name": "Friedrichstraße"}, {"name": "Unter den Linden"}]},
				{"steps": []}
			]
		}
	]
}`

func TestDescend_WalksTheChain(t *testing.T) {
	doc := mustParse(t, routeDoc)
	hops := RouteHops("routes")

	route, err := Descend(doc, hops, 0)
	require.NoError(t, err)
	f, err := FieldNum(route, "distance")
	require.NoError(t, err)
	assert.Equal(t, 1500.5, f)

	step, err := Descend(doc, hops, 0, 0, 1)
	require.NoError(t, err)
	s, err := FieldStr(step, "name")
	require.NoError(t, err)
	assert.Equal(t, "Unter den Linden", s)

	// Zero indices returns the root untouched.
	root, err := Descend(doc, hops)
	require.NoError(t, err)
	assert.True(t, jsonval.Equal(doc, root))
}

func TestDescend_PerLevelCodes(t *testing.T) {
	doc := mustParse(t, routeDoc)
	hops := RouteHops("routes")

	tests := []struct {
		name    string
		indices []int
		code    fault.Code
	}{
		{"route index", []int{1}, fault.RouteIndexOutOfBounds},
		{"negative route index", []int{-1}, fault.RouteIndexOutOfBounds},
		{"leg index", []int{0, 2}, fault.LegIndexOutOfBounds},
		{"step index", []int{0, 0, 5}, fault.StepIndexOutOfBounds},
		{"step index on empty leg", []int{0, 1, 0}, fault.StepIndexOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Descend(doc, hops, tt.indices...)
			assert.Equal(t, tt.code, fault.CodeOf(err))
		})
	}
}

func TestDescend_MissingCollections(t *testing.T) {
	hops := RouteHops("matchings")

	_, err := Descend(mustParse(t, `{"code": "Ok"}`), hops, 0)
	assert.Equal(t, fault.NoRoute, fault.CodeOf(err))

	noSteps := mustParse(t, `{"matchings": [{"legs": [{"summary": ""}]}]}`)
	_, err = Descend(noSteps, hops, 0, 0, 0)
	assert.Equal(t, fault.NoSteps, fault.CodeOf(err))
}

func TestDescend_TooDeep(t *testing.T) {
	doc := mustParse(t, routeDoc)
	_, err := Descend(doc, RouteHops("routes"), 0, 0, 0, 0)
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
}

func TestCollectionLen(t *testing.T) {
	doc := mustParse(t, routeDoc)
	hops := RouteHops("routes")

	n, err := CollectionLen(doc, hops[0])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = CollectionLen(doc, Hop{Key: "waypoints", Missing: fault.Missing("waypoints"), Bounds: fault.IndexOutOfBounds})
	assert.Equal(t, -1, n)
	assert.Equal(t, fault.Code("NoWaypoints"), fault.CodeOf(err))
}

func TestGeometry_Polyline(t *testing.T) {
	s, err := GeometryPolyline(jsonval.String("_p~iF~ps|U_ulLnnqC"))
	require.NoError(t, err)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC", s)

	_, err = GeometryCoordinates(jsonval.String("_p~iF~ps|U_ulLnnqC"))
	assert.Equal(t, fault.UnsupportedGeometry, fault.CodeOf(err))
}

func TestGeometry_GeoJSON(t *testing.T) {
	geom := mustParse(t, `{"type": "LineString", "coordinates": [[13.38, 52.51], [13.39, 52.52]]}`)

	items, err := GeometryCoordinates(geom)
	require.NoError(t, err)
	require.Len(t, items, 2)
	lon, lat, err := LonLat(items[0])
	require.NoError(t, err)
	assert.Equal(t, 13.38, lon)
	assert.Equal(t, 52.51, lat)

	_, err = GeometryPolyline(geom)
	assert.Equal(t, fault.UnsupportedGeometry, fault.CodeOf(err))
}

func TestGeometry_UnexpectedKind(t *testing.T) {
	_, err := GeometryCoordinates(jsonval.Number(1))
	assert.Equal(t, fault.UnsupportedGeometry, fault.CodeOf(err))

	_, err = GeometryPolyline(jsonval.Null())
	assert.Equal(t, fault.UnsupportedGeometry, fault.CodeOf(err))
}
