// Package params holds the mutable builder bundles a caller populates before
// invoking the engine. A bundle is owned by the caller and only read by the
// engine call. Setters validate their arguments up front and report
// InvalidArgument faults; they never touch the engine or any document.
package params

import (
	"math"

	"github.com/routekit/routekit/fault"
)

// Coordinate is one query location in longitude/latitude order.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// Bearing restricts the direction of travel at a coordinate: Value is the
// clockwise angle from true north, Range the allowed deviation to either
// side, both in degrees.
type Bearing struct {
	Value int
	Range int
}

// Base carries the fields shared by every service bundle: the coordinate
// list, the per-coordinate options aligned with it, and the output options.
type Base struct {
	coordinates []Coordinate
	radiuses    []float64 // NaN marks "unlimited" per coordinate
	bearings    []*Bearing
	approaches  []*Approach
	hints       []string

	excludes      []string
	generateHints bool
	skipWaypoints bool
	snapping      Snapping
	format        Format
}

func newBase() Base {
	return Base{generateHints: true}
}

// AddCoordinate appends a query location. Longitude and latitude are checked
// against their valid ranges.
func (b *Base) AddCoordinate(longitude, latitude float64) error {
	if longitude < -180 || longitude > 180 || math.IsNaN(longitude) {
		return fault.Newf(fault.InvalidArgument, "longitude %v out of range [-180, 180]", longitude)
	}
	if latitude < -90 || latitude > 90 || math.IsNaN(latitude) {
		return fault.Newf(fault.InvalidArgument, "latitude %v out of range [-90, 90]", latitude)
	}
	b.coordinates = append(b.coordinates, Coordinate{Longitude: longitude, Latitude: latitude})
	b.radiuses = append(b.radiuses, math.NaN())
	b.bearings = append(b.bearings, nil)
	b.approaches = append(b.approaches, nil)
	b.hints = append(b.hints, "")
	return nil
}

// AddCoordinateWith appends a query location together with its snapping
// radius and bearing.
func (b *Base) AddCoordinateWith(longitude, latitude, radius float64, bearing, bearingRange int) error {
	if err := b.AddCoordinate(longitude, latitude); err != nil {
		return err
	}
	last := len(b.coordinates) - 1
	if err := b.SetRadius(last, radius); err != nil {
		return err
	}
	return b.SetBearing(last, bearing, bearingRange)
}

func (b *Base) checkIndex(index int) error {
	if index < 0 || index >= len(b.coordinates) {
		return fault.Newf(fault.InvalidArgument, "coordinate index %d out of range, %d coordinates", index, len(b.coordinates))
	}
	return nil
}

// SetRadius sets the snapping radius in meters for one coordinate.
func (b *Base) SetRadius(index int, radius float64) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if radius <= 0 || math.IsNaN(radius) {
		return fault.Newf(fault.InvalidArgument, "radius %v must be positive", radius)
	}
	b.radiuses[index] = radius
	return nil
}

// SetBearing restricts the direction of travel at one coordinate.
func (b *Base) SetBearing(index, value, bearingRange int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if value < 0 || value > 360 {
		return fault.Newf(fault.InvalidArgument, "bearing %d out of range [0, 360]", value)
	}
	if bearingRange < 0 || bearingRange > 180 {
		return fault.Newf(fault.InvalidArgument, "bearing range %d out of range [0, 180]", bearingRange)
	}
	b.bearings[index] = &Bearing{Value: value, Range: bearingRange}
	return nil
}

// SetApproach restricts the side of approach at one coordinate.
func (b *Base) SetApproach(index int, approach Approach) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if approach < ApproachCurb || approach > ApproachOpposite {
		return fault.Newf(fault.InvalidArgument, "unknown approach %d", approach)
	}
	b.approaches[index] = &approach
	return nil
}

// SetHint attaches an opaque base64 snapping hint to one coordinate.
func (b *Base) SetHint(index int, hint string) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if hint == "" {
		return fault.New(fault.InvalidArgument, "hint must not be empty")
	}
	b.hints[index] = hint
	return nil
}

// AddExclude excludes a routing profile class from the query.
func (b *Base) AddExclude(profile string) error {
	if profile == "" {
		return fault.New(fault.InvalidArgument, "exclude profile must not be empty")
	}
	b.excludes = append(b.excludes, profile)
	return nil
}

// SetGenerateHints toggles hint generation in the response.
func (b *Base) SetGenerateHints(on bool) { b.generateHints = on }

// SetSkipWaypoints drops the waypoints array from the response.
func (b *Base) SetSkipWaypoints(on bool) { b.skipWaypoints = on }

// SetSnapping selects the snapping behavior.
func (b *Base) SetSnapping(s Snapping) error {
	if s != SnappingDefault && s != SnappingAny {
		return fault.Newf(fault.InvalidArgument, "unknown snapping %d", s)
	}
	b.snapping = s
	return nil
}

// SetFormat selects the output format. Only FormatJSON is accepted.
func (b *Base) SetFormat(f Format) error {
	if f != FormatJSON {
		return fault.Newf(fault.InvalidArgument, "unsupported output format %d", f)
	}
	b.format = f
	return nil
}

// CoordinateCount returns the number of query locations added so far.
func (b *Base) CoordinateCount() int { return len(b.coordinates) }

// Coordinates returns the query locations in insertion order.
func (b *Base) Coordinates() []Coordinate { return b.coordinates }

// Radius returns the snapping radius of one coordinate; the second result is
// false when no radius was set.
func (b *Base) Radius(index int) (float64, bool) {
	if index < 0 || index >= len(b.radiuses) || math.IsNaN(b.radiuses[index]) {
		return 0, false
	}
	return b.radiuses[index], true
}

// BearingAt returns the bearing restriction of one coordinate, or nil.
func (b *Base) BearingAt(index int) *Bearing {
	if index < 0 || index >= len(b.bearings) {
		return nil
	}
	return b.bearings[index]
}

// ApproachAt returns the approach restriction of one coordinate, or nil.
func (b *Base) ApproachAt(index int) *Approach {
	if index < 0 || index >= len(b.approaches) {
		return nil
	}
	return b.approaches[index]
}

// HintAt returns the snapping hint of one coordinate, empty when unset.
func (b *Base) HintAt(index int) string {
	if index < 0 || index >= len(b.hints) {
		return ""
	}
	return b.hints[index]
}

// Excludes returns the excluded profile classes.
func (b *Base) Excludes() []string { return b.excludes }

// GenerateHints reports whether the response should carry hints.
func (b *Base) GenerateHints() bool { return b.generateHints }

// SkipWaypoints reports whether the waypoints array is dropped.
func (b *Base) SkipWaypoints() bool { return b.skipWaypoints }

// Snapping returns the snapping behavior.
func (b *Base) Snapping() Snapping { return b.snapping }

// Format returns the output format.
func (b *Base) Format() Format { return b.format }
