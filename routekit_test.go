package routekit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine/replay"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/params"
)

func newTestClient(t *testing.T) (*Client, *replay.Engine) {
	t.Helper()
	eng := replay.New()
	client, err := NewClient(eng)
	require.NoError(t, err)
	return client, eng
}

func routeParams(t *testing.T) *params.Route {
	t.Helper()
	p := params.NewRoute()
	require.NoError(t, p.AddCoordinate(13.388798, 52.517033))
	require.NoError(t, p.AddCoordinate(13.39763, 52.529432))
	return p
}

func TestNewClient_NilEngine(t *testing.T) {
	_, err := NewClient(nil)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))
}

func TestClient_RouteSuccess(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceRoute, []byte(`{
		"code": "Ok",
		"routes": [{"distance": 1886.8, "duration": 251.5, "weight": 251.5, "weight_name": "routability", "legs": []}],
		"waypoints": []
	}`)))

	resp, err := client.Route(context.Background(), routeParams(t))
	require.NoError(t, err)

	dist, err := resp.Distance(0)
	require.NoError(t, err)
	assert.Equal(t, 1886.8, dist)
	assert.Equal(t, params.GeometriesPolyline, resp.Geometries())
}

func TestClient_RouteEngineErrorIsTranslated(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceRoute, []byte(`{
		"code": "NoRoute",
		"message": "Impossible route between points"
	}`)))

	_, err := client.Route(context.Background(), routeParams(t))
	assert.Equal(t, fault.NoRoute, fault.CodeOf(err))
	assert.Equal(t, "Impossible route between points", fault.MessageOf(err))
}

func TestClient_RouteFallbackOnBadErrorPayload(t *testing.T) {
	client, eng := newTestClient(t)
	// An error document without a message falls back to the per-service code.
	require.NoError(t, eng.QueueJSON(replay.ServiceRoute, []byte(`{"code": "NoRoute"}`)))

	_, err := client.Route(context.Background(), routeParams(t))
	assert.Equal(t, fault.RouteError, fault.CodeOf(err))
}

func TestClient_RouteArity(t *testing.T) {
	client, _ := newTestClient(t)

	p := params.NewRoute()
	require.NoError(t, p.AddCoordinate(13.4, 52.5))

	_, err := client.Route(context.Background(), p)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))

	_, err = client.Route(context.Background(), nil)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))
}

func TestClient_NearestTakesExactlyOneCoordinate(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceNearest, []byte(`{"code": "Ok", "waypoints": []}`)))

	p := params.NewNearest()
	_, err := client.Nearest(context.Background(), p)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))

	require.NoError(t, p.AddCoordinate(13.4, 52.5))
	_, err = client.Nearest(context.Background(), p)
	assert.NoError(t, err)
}

func TestClient_TableErrorFallback(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceTable, []byte(`["not", "an", "object"]`)))

	p := params.NewTable()
	require.NoError(t, p.AddCoordinate(13.4, 52.5))
	require.NoError(t, p.AddCoordinate(13.5, 52.6))

	_, err := client.Table(context.Background(), p)
	assert.Equal(t, fault.TableError, fault.CodeOf(err))
}

func TestClient_MatchTimestampArity(t *testing.T) {
	client, _ := newTestClient(t)

	p := params.NewMatch()
	require.NoError(t, p.AddCoordinate(13.4, 52.5))
	require.NoError(t, p.AddCoordinate(13.5, 52.6))
	require.NoError(t, p.AddTimestamp(100))

	_, err := client.Match(context.Background(), p)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))
}

func TestClient_MatchSuccess(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceMatch, []byte(`{
		"code": "Ok",
		"matchings": [{"distance": 100, "duration": 20, "confidence": 0.9, "legs": []}],
		"tracepoints": [null, null]
	}`)))

	p := params.NewMatch()
	require.NoError(t, p.AddCoordinate(13.4, 52.5))
	require.NoError(t, p.AddCoordinate(13.5, 52.6))

	resp, err := client.Match(context.Background(), p)
	require.NoError(t, err)

	conf, err := resp.Confidence(0)
	require.NoError(t, err)
	assert.Equal(t, 0.9, conf)

	v, err := resp.TracepointValid(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestClient_TripSuccess(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceTrip, []byte(`{
		"code": "Ok",
		"trips": [{"distance": 500, "duration": 80, "legs": []}],
		"waypoints": [
			{"name": "", "location": [13.4, 52.5], "trips_index": 0, "waypoint_index": 0},
			{"name": "", "location": [13.5, 52.6], "trips_index": 0, "waypoint_index": 1}
		]
	}`)))

	p := params.NewTrip()
	require.NoError(t, p.AddCoordinate(13.4, 52.5))
	require.NoError(t, p.AddCoordinate(13.5, 52.6))

	resp, err := client.Trip(context.Background(), p)
	require.NoError(t, err)

	idx, err := resp.WaypointWaypointIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestClient_Tile(t *testing.T) {
	client, eng := newTestClient(t)

	p := params.NewTile()
	require.NoError(t, p.SetZ(12))
	require.NoError(t, p.SetX(2200))
	require.NoError(t, p.SetY(1343))

	// No payload loaded: the failure surfaces with the tile service code.
	_, err := client.Tile(context.Background(), p)
	assert.Equal(t, fault.TileError, fault.CodeOf(err))

	eng.SetTile([]byte{0x1a, 0x02})
	tile, err := client.Tile(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 2, tile.Size())
}

func TestClient_EngineTransportErrorIsCoerced(t *testing.T) {
	client, _ := newTestClient(t)

	// Nothing queued: the replay engine reports a plain error, which the
	// boundary coerces into an Exception fault.
	_, err := client.Route(context.Background(), routeParams(t))
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
}

func TestClient_HonorsContext(t *testing.T) {
	client, eng := newTestClient(t)
	require.NoError(t, eng.QueueJSON(replay.ServiceRoute, []byte(`{"code": "Ok", "routes": [], "waypoints": []}`)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Route(ctx, routeParams(t))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "6.0.0", Version)
}
