package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

const tripFixture = `{
	"code": "Ok",
	"trips": [
		{
			"distance": 6540.2,
			"duration": 911.7,
			"geometry": "_p~iF~ps|U",
			"legs": [
				{"distance": 2100.1, "duration": 300.5, "summary": ""},
				{"distance": 2240.0, "duration": 311.2, "summary": ""},
				{"distance": 2200.1, "duration": 300.0, "summary": ""}
			]
		}
	],
	"waypoints": [
		{"name": "A", "location": [13.38, 52.51], "trips_index": 0, "waypoint_index": 0},
		{"name": "B", "location": [13.39, 52.52], "trips_index": 0, "waypoint_index": 2},
		{"name": "C", "location": [13.40, 52.53], "trips_index": 0, "waypoint_index": 1}
	]
}`

func newTripView(t *testing.T, input string) *Trip {
	t.Helper()
	doc, err := jsonval.Parse([]byte(input))
	require.NoError(t, err)
	view, err := NewTrip(doc, params.GeometriesPolyline)
	require.NoError(t, err)
	return view
}

func TestTrip_Trips(t *testing.T) {
	view := newTripView(t, tripFixture)

	n, err := view.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	dist, err := view.Distance(0)
	require.NoError(t, err)
	assert.Equal(t, 6540.2, dist)

	legs, err := view.LegCount(0)
	require.NoError(t, err)
	assert.Equal(t, 3, legs)

	legDur, err := view.LegDuration(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 311.2, legDur)

	_, err = view.Distance(2)
	assert.Equal(t, fault.RouteIndexOutOfBounds, fault.CodeOf(err))
}

func TestTrip_WaypointOrdering(t *testing.T) {
	view := newTripView(t, tripFixture)

	n, err := view.WaypointCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// The optimizer visits B last even though it was the second input.
	order := make([]int, n)
	for i := 0; i < n; i++ {
		idx, err := view.WaypointWaypointIndex(i)
		require.NoError(t, err)
		order[i] = idx
	}
	assert.Equal(t, []int{0, 2, 1}, order)

	trips, err := view.WaypointTripsIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 0, trips)

	name, err := view.WaypointName(2)
	require.NoError(t, err)
	assert.Equal(t, "C", name)
}

func TestTrip_MissingTrips(t *testing.T) {
	view := newTripView(t, `{"code": "Ok", "waypoints": []}`)

	n, err := view.Count()
	assert.Equal(t, -1, n)
	assert.Equal(t, fault.NoRoute, fault.CodeOf(err))
}

func TestTrip_NilView(t *testing.T) {
	var view *Trip

	n, err := view.WaypointCount()
	assert.Equal(t, -1, n)
	assert.Equal(t, fault.InvalidArgument, fault.CodeOf(err))
}
