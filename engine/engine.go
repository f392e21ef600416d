// Package engine defines the contract with the external routing engine this
// module wraps. The engine computes routes, matchings, tables and tiles; this
// module only hands it parameter bundles and consumes the result documents.
package engine

import (
	"context"

	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Status is the engine-level outcome of a completed query. A query can
// complete and still not succeed; the result document then carries the
// engine's own error payload.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

func (s Status) String() string {
	if s == StatusOK {
		return "ok"
	}
	return "error"
}

// Result pairs the engine status with the result document. Success results
// and engine error payloads share the document representation.
type Result struct {
	Status Status
	Doc    jsonval.Document
}

// Engine is implemented by the routing engine collaborator. Each method is
// one synchronous query entry point; it blocks the calling thread for the
// duration of the query and honors ctx for cancellation where the
// implementation supports it. A non-nil error means the query itself could
// not be run; an engine-level failure comes back as StatusError with the
// engine's error document.
type Engine interface {
	Nearest(ctx context.Context, p *params.Nearest) (Result, error)
	Route(ctx context.Context, p *params.Route) (Result, error)
	Table(ctx context.Context, p *params.Table) (Result, error)
	Match(ctx context.Context, p *params.Match) (Result, error)
	Trip(ctx context.Context, p *params.Trip) (Result, error)

	// Tile returns one vector tile as an opaque protobuf-encoded byte
	// payload; decoding it is the engine's domain.
	Tile(ctx context.Context, p *params.Tile) ([]byte, error)
}
