package replay

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/params"
)

func routeDistance(t *testing.T, result engine.Result) float64 {
	t.Helper()
	obj, ok := result.Doc.Object()
	require.True(t, ok)
	routes, ok := obj.Get("routes")
	require.True(t, ok)
	items, ok := routes.Array()
	require.True(t, ok)
	require.NotEmpty(t, items)
	route, ok := items[0].Object()
	require.True(t, ok)
	distance, ok := route.Get("distance")
	require.True(t, ok)
	f, ok := distance.Number()
	require.True(t, ok)
	return f
}

func TestEngine_ReplaysInFIFOOrder(t *testing.T) {
	e := New()
	require.NoError(t, e.QueueJSON(ServiceRoute, []byte(`{"code": "Ok", "routes": [{"distance": 1}]}`)))
	require.NoError(t, e.QueueJSON(ServiceRoute, []byte(`{"code": "Ok", "routes": [{"distance": 2}]}`)))

	first, err := e.Route(context.Background(), params.NewRoute())
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOK, first.Status)

	second, err := e.Route(context.Background(), params.NewRoute())
	require.NoError(t, err)

	assert.Equal(t, 1.0, routeDistance(t, first))
	assert.Equal(t, 2.0, routeDistance(t, second))

	_, err = e.Route(context.Background(), params.NewRoute())
	assert.ErrorContains(t, err, "no route response queued")
}

func TestEngine_StatusFromDocumentCode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want engine.Status
	}{
		{"ok", `{"code": "Ok"}`, engine.StatusOK},
		{"engine failure", `{"code": "NoRoute", "message": "Impossible route"}`, engine.StatusError},
		{"no code field", `{"routes": []}`, engine.StatusError},
		{"non-string code", `{"code": 200}`, engine.StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			require.NoError(t, e.QueueJSON(ServiceNearest, []byte(tt.doc)))
			result, err := e.Nearest(context.Background(), params.NewNearest())
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Status)
		})
	}
}

func TestEngine_QueuesAreIndependent(t *testing.T) {
	e := New()
	require.NoError(t, e.QueueJSON(ServiceTable, []byte(`{"code": "Ok"}`)))

	_, err := e.Trip(context.Background(), params.NewTrip())
	assert.ErrorContains(t, err, "no trip response queued")

	_, err = e.Table(context.Background(), params.NewTable())
	assert.NoError(t, err)
}

func TestEngine_QueueJSONRejectsMalformed(t *testing.T) {
	e := New()
	assert.Error(t, e.QueueJSON(ServiceMatch, []byte(`{"code":`)))
}

func TestEngine_QueueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"code": "Ok", "routes": []}`), 0644))

	e := New()
	require.NoError(t, e.QueueFile(ServiceRoute, path))

	result, err := e.Route(context.Background(), params.NewRoute())
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOK, result.Status)

	assert.Error(t, e.QueueFile(ServiceRoute, filepath.Join(t.TempDir(), "missing.json")))
}

func TestEngine_Tile(t *testing.T) {
	e := New()

	_, err := e.Tile(context.Background(), params.NewTile())
	assert.Error(t, err)

	payload := []byte{0x1a, 0x02, 0x00, 0x01}
	e.SetTile(payload)
	data, err := e.Tile(context.Background(), params.NewTile())
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestEngine_HonorsContext(t *testing.T) {
	e := New()
	require.NoError(t, e.QueueJSON(ServiceRoute, []byte(`{"code": "Ok"}`)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Route(ctx, params.NewRoute())
	assert.ErrorIs(t, err, context.Canceled)

	// The canceled call must not consume the queued document.
	_, err = e.Route(context.Background(), params.NewRoute())
	assert.NoError(t, err)
}
