// Package response wraps engine result documents in thin per-service views.
// Each view applies the generic document accessor with service-specific
// paths and error codes; no view computes anything itself. Views are
// non-owning: a view and every value it hands out stay valid as long as the
// underlying handle is reachable. A handle must not be shared across
// goroutines without external serialization; distinct handles are
// independent.
package response

import (
	"math"

	"github.com/routekit/routekit/access"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Blob is an owned byte buffer holding one rendered JSON text.
type Blob struct {
	data []byte
}

// Data returns the buffer contents. The buffer is owned by the blob and
// independent of the response it was rendered from.
func (b *Blob) Data() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Size returns the buffer length in bytes.
func (b *Blob) Size() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Handle owns one result document plus the per-service metadata needed to
// interpret it, such as the geometry encoding the query requested.
type Handle struct {
	doc        jsonval.Document
	geometries params.Geometries
}

func newHandle(doc jsonval.Document, geometries params.Geometries) (*Handle, error) {
	if _, ok := doc.Object(); !ok {
		return nil, fault.Newf(fault.Exception, "result document is %s, expected object", doc.Kind())
	}
	return &Handle{doc: doc, geometries: geometries}, nil
}

func errNilHandle() error {
	return fault.New(fault.InvalidArgument, "nil response handle")
}

// Doc returns the underlying document.
func (h *Handle) Doc() jsonval.Document {
	if h == nil {
		return jsonval.Null()
	}
	return h.doc
}

// Geometries returns the geometry encoding the query requested, which
// decides the variant of every geometry field in the document.
func (h *Handle) Geometries() params.Geometries {
	if h == nil {
		return params.GeometriesPolyline
	}
	return h.geometries
}

func (h *Handle) json() (*Blob, error) {
	if h == nil {
		return nil, errNilHandle()
	}
	return fault.Guard[*Blob](nil, func() (*Blob, error) {
		return &Blob{data: jsonval.Render(h.doc)}, nil
	})
}

func (h *Handle) dataVersion() (string, bool, error) {
	if h == nil {
		return "", false, errNilHandle()
	}
	return access.OptionalStr(h.doc, "data_version")
}

// guardNum runs fn through the protected-call combinator with the NaN
// sentinel for unknown doubles.
func guardNum(fn func() (float64, error)) (float64, error) {
	return fault.Guard(math.NaN(), fn)
}

// guardInt uses the -1 sentinel for unknown signed integers.
func guardInt(fn func() (int, error)) (int, error) {
	return fault.Guard(-1, fn)
}

// guardStr uses the empty string sentinel.
func guardStr(fn func() (string, error)) (string, error) {
	return fault.Guard("", fn)
}

// guardCoord uses a NaN coordinate sentinel.
func guardCoord(fn func() (params.Coordinate, error)) (params.Coordinate, error) {
	return fault.Guard(params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, fn)
}
