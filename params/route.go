package params

import "github.com/routekit/routekit/fault"

// routeOptions carries the option set shared by the Route, Match and Trip
// bundles: step instructions, alternatives, geometry shape, overview detail
// and per-segment annotations.
type routeOptions struct {
	steps                bool
	alternatives         bool
	numberOfAlternatives uint
	geometries           Geometries
	overview             Overview
	continueStraight     *bool
	annotations          Annotations
	waypoints            []int
}

// SetSteps toggles turn-by-turn step instructions.
func (o *routeOptions) SetSteps(on bool) { o.steps = on }

// SetAlternatives toggles alternative route search.
func (o *routeOptions) SetAlternatives(on bool) {
	o.alternatives = on
	if on && o.numberOfAlternatives == 0 {
		o.numberOfAlternatives = 1
	}
}

// SetNumberOfAlternatives requests up to count alternative routes.
func (o *routeOptions) SetNumberOfAlternatives(count uint) {
	o.numberOfAlternatives = count
	o.alternatives = count > 0
}

// SetGeometries selects the on-the-wire geometry shape. The choice must be
// propagated to the response view so geometry accessors can interpret the
// field's variant.
func (o *routeOptions) SetGeometries(g Geometries) error {
	if g < GeometriesPolyline || g > GeometriesGeoJSON {
		return fault.Newf(fault.InvalidArgument, "unknown geometries format %d", g)
	}
	o.geometries = g
	return nil
}

// SetOverview selects the overview geometry detail.
func (o *routeOptions) SetOverview(ov Overview) error {
	if ov < OverviewSimplified || ov > OverviewFalse {
		return fault.Newf(fault.InvalidArgument, "unknown overview %d", ov)
	}
	o.overview = ov
	return nil
}

// SetContinueStraight forces or forbids u-turns at via coordinates.
func (o *routeOptions) SetContinueStraight(on bool) { o.continueStraight = &on }

// SetAnnotations requests per-segment metadata.
func (o *routeOptions) SetAnnotations(a Annotations) error {
	if a&^AnnotationsAll != 0 {
		return fault.Newf(fault.InvalidArgument, "unknown annotations bits %#x", int(a))
	}
	o.annotations = a
	return nil
}

// AddWaypoint marks the coordinate at index as a stop; unmarked coordinates
// become silent via points. Bounds against the coordinate list are checked
// at query time, since coordinates may be added after waypoints.
func (o *routeOptions) AddWaypoint(index int) error {
	if index < 0 {
		return fault.Newf(fault.InvalidArgument, "waypoint index %d must not be negative", index)
	}
	o.waypoints = append(o.waypoints, index)
	return nil
}

// ClearWaypoints drops all waypoint marks.
func (o *routeOptions) ClearWaypoints() { o.waypoints = nil }

// Steps reports whether step instructions were requested.
func (o *routeOptions) Steps() bool { return o.steps }

// Alternatives reports whether alternative routes were requested.
func (o *routeOptions) Alternatives() bool { return o.alternatives }

// NumberOfAlternatives returns the requested alternative count.
func (o *routeOptions) NumberOfAlternatives() uint { return o.numberOfAlternatives }

// Geometries returns the requested geometry shape.
func (o *routeOptions) Geometries() Geometries { return o.geometries }

// Overview returns the requested overview detail.
func (o *routeOptions) Overview() Overview { return o.overview }

// ContinueStraight returns the u-turn policy, or nil when unset.
func (o *routeOptions) ContinueStraight() *bool { return o.continueStraight }

// Annotations returns the requested per-segment metadata set.
func (o *routeOptions) Annotations() Annotations { return o.annotations }

// Waypoints returns the marked stop indices in insertion order.
func (o *routeOptions) Waypoints() []int { return o.waypoints }

// Route is the parameter bundle of the route service.
type Route struct {
	Base
	routeOptions
}

// NewRoute creates a route bundle with engine defaults.
func NewRoute() *Route {
	return &Route{Base: newBase()}
}
