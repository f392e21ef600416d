package response

import (
	"math"

	"github.com/routekit/routekit/access"
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
	"github.com/routekit/routekit/params"
)

// Table is the view over a table service result: the duration and distance
// matrices plus the snapped sources and destinations.
type Table struct {
	h            *Handle
	sources      waypointList
	destinations waypointList
}

// NewTable wraps a table result document.
func NewTable(doc jsonval.Document) (*Table, error) {
	h, err := newHandle(doc, params.GeometriesPolyline)
	if err != nil {
		return nil, err
	}
	return &Table{h: h, sources: newWaypointList(h, "sources"), destinations: newWaypointList(h, "destinations")}, nil
}

// JSON renders the whole document to compact JSON text.
func (t *Table) JSON() (*Blob, error) { return t.handle().json() }

// DataVersion reads the optional dataset timestamp.
func (t *Table) DataVersion() (string, bool, error) { return t.handle().dataVersion() }

func (t *Table) handle() *Handle {
	if t == nil {
		return nil
	}
	return t.h
}

// Durations copies the duration matrix into buf in row-major order and
// returns the number of cells written. Unreachable pairs, null in the
// document, come out as +Inf. When buf is too small the call fails with
// BufferTooSmall, writes nothing, and returns -1; the message names the
// required capacity.
func (t *Table) Durations(buf []float64) (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.matrix("durations", buf)
}

// Distances copies the distance matrix into buf, with the same contract as
// Durations. The matrix is present only when the query asked for distance
// annotations.
func (t *Table) Distances(buf []float64) (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.matrix("distances", buf)
}

// DurationsSize returns how many cells Durations needs.
func (t *Table) DurationsSize() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.matrixSize("durations")
}

// DistancesSize returns how many cells Distances needs.
func (t *Table) DistancesSize() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.matrixSize("distances")
}

// matrix extracts one dense row-major matrix. Validation runs in full
// before the first write so a failing call never leaves buf half-filled.
func (t *Table) matrix(key string, buf []float64) (int, error) {
	return fault.Guard(-1, func() (int, error) {
		rows, cols, err := t.matrixShape(key)
		if err != nil {
			return -1, err
		}
		need := rows * cols
		if len(buf) < need {
			return -1, fault.Newf(fault.BufferTooSmall, "%s matrix needs %d cells, buffer holds %d", key, need, len(buf))
		}
		matrix, err := access.FieldArr(t.h.doc, key)
		if err != nil {
			return -1, err
		}
		for i, rowVal := range matrix {
			row, _ := rowVal.Array()
			for j, cell := range row {
				if cell.IsNull() {
					buf[i*cols+j] = math.Inf(1)
					continue
				}
				f, _ := cell.Number()
				buf[i*cols+j] = f
			}
		}
		return need, nil
	})
}

func (t *Table) matrixSize(key string) (int, error) {
	return fault.Guard(-1, func() (int, error) {
		rows, cols, err := t.matrixShape(key)
		if err != nil {
			return -1, err
		}
		return rows * cols, nil
	})
}

// matrixShape checks that every row is an array of the same length and that
// every cell is a number or null, and returns the dimensions.
func (t *Table) matrixShape(key string) (rows, cols int, err error) {
	matrix, err := access.FieldArr(t.h.doc, key)
	if err != nil {
		return 0, 0, err
	}
	for i, rowVal := range matrix {
		row, ok := rowVal.Array()
		if !ok {
			return 0, 0, fault.Newf(fault.Exception, "%s row %d is %s, expected array", key, i, rowVal.Kind())
		}
		if i == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return 0, 0, fault.Newf(fault.Exception, "%s row %d has %d cells, expected %d", key, i, len(row), cols)
		}
		for j, cell := range row {
			if cell.IsNull() {
				continue
			}
			if _, ok := cell.Number(); !ok {
				return 0, 0, fault.Newf(fault.Exception, "%s cell (%d, %d) is %s, expected number or null", key, i, j, cell.Kind())
			}
		}
	}
	return len(matrix), cols, nil
}

// SourceCount returns the number of snapped sources.
func (t *Table) SourceCount() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.sources.count()
}

// SourceName returns the road name a source snapped onto.
func (t *Table) SourceName(sourceIndex int) (string, error) {
	if t == nil {
		return "", errNilHandle()
	}
	return t.sources.name(sourceIndex)
}

// SourceLocation returns the snapped position of a source.
func (t *Table) SourceLocation(sourceIndex int) (params.Coordinate, error) {
	if t == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return t.sources.location(sourceIndex)
}

// DestinationCount returns the number of snapped destinations.
func (t *Table) DestinationCount() (int, error) {
	if t == nil {
		return -1, errNilHandle()
	}
	return t.destinations.count()
}

// DestinationName returns the road name a destination snapped onto.
func (t *Table) DestinationName(destinationIndex int) (string, error) {
	if t == nil {
		return "", errNilHandle()
	}
	return t.destinations.name(destinationIndex)
}

// DestinationLocation returns the snapped position of a destination.
func (t *Table) DestinationLocation(destinationIndex int) (params.Coordinate, error) {
	if t == nil {
		return params.Coordinate{Longitude: math.NaN(), Latitude: math.NaN()}, errNilHandle()
	}
	return t.destinations.location(destinationIndex)
}
