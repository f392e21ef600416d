package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

func TestNearest_Waypoints(t *testing.T) {
	const fixture = `{
		"code": "Ok",
		"waypoints": [
			{"name": "Friedrichstraße", "hint": "aGVsbG8=", "distance": 4.2, "location": [13.388798, 52.517033], "nodes": [2264199819, 21487242]},
			{"name": "", "distance": 10.9, "location": [13.3889, 52.5171], "nodes": [21487242, 2264199819]}
		]
	}`
	doc, err := jsonval.Parse([]byte(fixture))
	require.NoError(t, err)
	view, err := NewNearest(doc)
	require.NoError(t, err)

	n, err := view.WaypointCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	name, err := view.WaypointName(0)
	require.NoError(t, err)
	assert.Equal(t, "Friedrichstraße", name)

	dist, err := view.WaypointDistance(1)
	require.NoError(t, err)
	assert.Equal(t, 10.9, dist)

	nodes, err := view.WaypointNodes(0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2264199819, 21487242}, nodes)

	hint, present, err := view.WaypointHint(0)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "aGVsbG8=", hint)
}

func TestTile_CopiesPayload(t *testing.T) {
	payload := []byte{0x1a, 0x02, 0x00}
	tile := NewTile(payload)

	payload[0] = 0xff
	assert.Equal(t, []byte{0x1a, 0x02, 0x00}, tile.Data())
	assert.Equal(t, 3, tile.Size())
}

func TestTile_Empty(t *testing.T) {
	tile := NewTile(nil)
	assert.Nil(t, tile.Data())
	assert.Equal(t, 0, tile.Size())

	var nilTile *Tile
	assert.Nil(t, nilTile.Data())
	assert.Equal(t, 0, nilTile.Size())
}

func TestBlob_NilSafe(t *testing.T) {
	var blob *Blob
	assert.Nil(t, blob.Data())
	assert.Equal(t, 0, blob.Size())
}

func TestHandle_GeometriesDefault(t *testing.T) {
	var h *Handle
	assert.Equal(t, params.GeometriesPolyline, h.Geometries())
	assert.True(t, h.Doc().IsNull())
}
