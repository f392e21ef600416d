// Package fault defines the error object every fallible routekit operation
// reports through, the machine-readable code taxonomy, and the boundary
// helpers that turn internal failures into one caller-facing error.
package fault

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

// Code is a short machine-readable failure code.
type Code string

// Argument, structural, bounds, schema and capacity codes.
const (
	InvalidArgument     Code = "InvalidArgument"
	Exception           Code = "Exception"
	BufferTooSmall      Code = "BufferTooSmall"
	IndexOutOfBounds    Code = "IndexOutOfBounds"
	UnsupportedGeometry Code = "UnsupportedGeometry"
	Unknown             Code = "Unknown"
)

// Per-level codes for the route/leg/step descent shared by the Route, Match
// and Trip schemas. Each hop of the chain reports its own code so callers
// can localize exactly which hop failed.
const (
	NoRoute               Code = "NoRoute"
	NoLegs                Code = "NoLegs"
	NoSteps               Code = "NoSteps"
	RouteIndexOutOfBounds Code = "RouteIndexOutOfBounds"
	LegIndexOutOfBounds   Code = "LegIndexOutOfBounds"
	StepIndexOutOfBounds  Code = "StepIndexOutOfBounds"
)

// Generic per-service engine failure codes, used when a failed engine call
// does not carry a {code, message} document of its own.
const (
	NearestError Code = "NearestError"
	RouteError   Code = "RouteError"
	TableError   Code = "TableError"
	MatchError   Code = "MatchError"
	TripError    Code = "TripError"
	TileError    Code = "TileError"
)

// Missing derives the structural-error code for an absent required field,
// e.g. "weight" -> NoWeight, "data_version" -> NoDataVersion.
func Missing(key string) Code {
	return Code("No" + strcase.ToCamel(key))
}

// Error is an owned code+message pair signaling one failure. Every failure
// path allocates a fresh instance; errors are never shared or reused.
type Error struct {
	code    Code
	message string
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Code returns the machine-readable code.
func (e *Error) Code() Code { return e.code }

// Message returns the human-readable description.
func (e *Error) Message() string { return e.message }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.message == "" {
		return string(e.code)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Is matches two faults by code, so tests and callers can compare with
// errors.Is against a bare New(code, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// CodeOf extracts the code from err. Non-fault errors report Exception, the
// catch-all for failures that crossed the boundary without a taxonomy code;
// a nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var f *Error
	if errors.As(err, &f) {
		return f.code
	}
	return Exception
}

// MessageOf extracts the human-readable description from err. Non-fault
// errors report their own Error text.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var f *Error
	if errors.As(err, &f) {
		return f.message
	}
	return err.Error()
}
