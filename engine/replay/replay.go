// Package replay provides an Engine that serves canned response documents
// instead of querying a road network. It backs tests and the offline
// inspection CLI: load a stored engine response, then run the regular facade
// against it.
package replay

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Service names one engine query entry point.
type Service string

const (
	ServiceNearest Service = "nearest"
	ServiceRoute   Service = "route"
	ServiceTable   Service = "table"
	ServiceMatch   Service = "match"
	ServiceTrip    Service = "trip"
)

// Engine replays queued documents in FIFO order, one per query. The status
// of a replayed query is derived from the document's own code field: "Ok"
// completes successfully, anything else replays an engine failure.
type Engine struct {
	mu     sync.Mutex
	queues map[Service][]jsonval.Document
	tile   []byte
}

// New creates an empty replay engine.
func New() *Engine {
	return &Engine{queues: make(map[Service][]jsonval.Document)}
}

// Queue appends a response document for one service.
func (e *Engine) Queue(svc Service, doc jsonval.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queues[svc] = append(e.queues[svc], doc)
}

// QueueJSON parses data and queues the resulting document.
func (e *Engine) QueueJSON(svc Service, data []byte) error {
	doc, err := jsonval.Parse(data)
	if err != nil {
		return fmt.Errorf("queue %s response: %w", svc, err)
	}
	e.Queue(svc, doc)
	return nil
}

// QueueFile reads path and queues its document.
func (e *Engine) QueueFile(svc Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("queue %s response: %w", svc, err)
	}
	return e.QueueJSON(svc, data)
}

// SetTile sets the payload served for tile queries.
func (e *Engine) SetTile(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tile = data
}

func (e *Engine) pop(ctx context.Context, svc Service) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	queue := e.queues[svc]
	if len(queue) == 0 {
		return engine.Result{}, fmt.Errorf("no %s response queued", svc)
	}
	doc := queue[0]
	e.queues[svc] = queue[1:]
	return engine.Result{Status: statusOf(doc), Doc: doc}, nil
}

// statusOf reads the engine's own success marker.
func statusOf(doc jsonval.Document) engine.Status {
	if obj, ok := doc.Object(); ok {
		if code, ok := obj.Get("code"); ok {
			if s, ok := code.Str(); ok && s == "Ok" {
				return engine.StatusOK
			}
		}
	}
	return engine.StatusError
}

// Nearest implements engine.Engine.
func (e *Engine) Nearest(ctx context.Context, _ *params.Nearest) (engine.Result, error) {
	return e.pop(ctx, ServiceNearest)
}

// Route implements engine.Engine.
func (e *Engine) Route(ctx context.Context, _ *params.Route) (engine.Result, error) {
	return e.pop(ctx, ServiceRoute)
}

// Table implements engine.Engine.
func (e *Engine) Table(ctx context.Context, _ *params.Table) (engine.Result, error) {
	return e.pop(ctx, ServiceTable)
}

// Match implements engine.Engine.
func (e *Engine) Match(ctx context.Context, _ *params.Match) (engine.Result, error) {
	return e.pop(ctx, ServiceMatch)
}

// Trip implements engine.Engine.
func (e *Engine) Trip(ctx context.Context, _ *params.Trip) (engine.Result, error) {
	return e.pop(ctx, ServiceTrip)
}

// Tile implements engine.Engine.
func (e *Engine) Tile(ctx context.Context, _ *params.Tile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tile == nil {
		return nil, fmt.Errorf("no tile payload set")
	}
	return e.tile, nil
}

var _ engine.Engine = (*Engine)(nil)
