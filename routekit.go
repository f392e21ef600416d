// Package routekit is a thin, safe façade over an OSRM-style routing
// engine. It bundles query parameters, runs each query through a protected
// boundary that turns every failure mode into a coded error, and wraps the
// result documents in typed per-service views.
package routekit

import (
	"context"
	"errors"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/params"
	"github.com/routekit/routekit/response"
)

// Version is the engine API generation this façade tracks.
const Version = "6.0.0"

// Client runs queries against one engine instance. A client is cheap and
// stateless; the engine behind it decides concurrency.
type Client struct {
	eng engine.Engine
}

// NewClient wraps an engine.
func NewClient(eng engine.Engine) (*Client, error) {
	if eng == nil {
		return nil, fault.New(fault.InvalidArgument, "nil engine")
	}
	return &Client{eng: eng}, nil
}

func (c *Client) check() error {
	if c == nil || c.eng == nil {
		return fault.New(fault.InvalidArgument, "nil client")
	}
	return nil
}

// Nearest snaps one coordinate to the road network and returns the
// candidate list.
func (c *Client) Nearest(ctx context.Context, p *params.Nearest) (*response.Nearest, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil nearest parameters")
	}
	if p.CoordinateCount() != 1 {
		return nil, fault.Newf(fault.InvalidArgument, "nearest takes exactly one coordinate, got %d", p.CoordinateCount())
	}
	result, err := c.eng.Nearest(ctx, p)
	if err != nil {
		return nil, fault.Coerce(err)
	}
	if result.Status != engine.StatusOK {
		return nil, fault.FromDocument(result.Doc, fault.NearestError)
	}
	return response.NewNearest(result.Doc)
}

// Route computes the fastest path through the given coordinates.
func (c *Client) Route(ctx context.Context, p *params.Route) (*response.Route, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil route parameters")
	}
	if p.CoordinateCount() < 2 {
		return nil, fault.Newf(fault.InvalidArgument, "route needs at least two coordinates, got %d", p.CoordinateCount())
	}
	result, err := c.eng.Route(ctx, p)
	if err != nil {
		return nil, fault.Coerce(err)
	}
	if result.Status != engine.StatusOK {
		return nil, fault.FromDocument(result.Doc, fault.RouteError)
	}
	return response.NewRoute(result.Doc, p.Geometries())
}

// Table computes the duration matrix between sources and destinations.
func (c *Client) Table(ctx context.Context, p *params.Table) (*response.Table, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil table parameters")
	}
	if p.CoordinateCount() < 2 {
		return nil, fault.Newf(fault.InvalidArgument, "table needs at least two coordinates, got %d", p.CoordinateCount())
	}
	result, err := c.eng.Table(ctx, p)
	if err != nil {
		return nil, fault.Coerce(err)
	}
	if result.Status != engine.StatusOK {
		return nil, fault.FromDocument(result.Doc, fault.TableError)
	}
	return response.NewTable(result.Doc)
}

// Match snaps a recorded GPS trace onto the road network.
func (c *Client) Match(ctx context.Context, p *params.Match) (*response.Match, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil match parameters")
	}
	if p.CoordinateCount() < 2 {
		return nil, fault.Newf(fault.InvalidArgument, "match needs at least two coordinates, got %d", p.CoordinateCount())
	}
	if ts := p.Timestamps(); len(ts) != 0 && len(ts) != p.CoordinateCount() {
		return nil, fault.Newf(fault.InvalidArgument, "got %d timestamps for %d coordinates", len(ts), p.CoordinateCount())
	}
	result, err := c.eng.Match(ctx, p)
	if err != nil {
		return nil, fault.Coerce(err)
	}
	if result.Status != engine.StatusOK {
		return nil, fault.FromDocument(result.Doc, fault.MatchError)
	}
	return response.NewMatch(result.Doc, p.Geometries())
}

// Trip solves the round-trip ordering problem over the given coordinates.
func (c *Client) Trip(ctx context.Context, p *params.Trip) (*response.Trip, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil trip parameters")
	}
	if p.CoordinateCount() < 2 {
		return nil, fault.Newf(fault.InvalidArgument, "trip needs at least two coordinates, got %d", p.CoordinateCount())
	}
	result, err := c.eng.Trip(ctx, p)
	if err != nil {
		return nil, fault.Coerce(err)
	}
	if result.Status != engine.StatusOK {
		return nil, fault.FromDocument(result.Doc, fault.TripError)
	}
	return response.NewTrip(result.Doc, p.Geometries())
}

// Tile fetches one vector tile. The tile service has no JSON document to
// interpret, so an engine failure surfaces as a TileError instead of a
// translated error payload.
func (c *Client) Tile(ctx context.Context, p *params.Tile) (*response.Tile, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.New(fault.InvalidArgument, "nil tile parameters")
	}
	data, err := fault.Guard[[]byte](nil, func() ([]byte, error) {
		return c.eng.Tile(ctx, p)
	})
	if err != nil {
		var f *fault.Error
		if errors.As(err, &f) && f.Code() == fault.Exception {
			return nil, fault.New(fault.TileError, f.Message())
		}
		return nil, err
	}
	return response.NewTile(data), nil
}
