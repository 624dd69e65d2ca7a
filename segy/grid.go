package segy

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/robert-malhotra/go-segy/internal/dtype"
)

// Sample is the set of Go element types a Grid can hold.
type Sample interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Grid is a traces x samples array of trace data stored row-major: row i
// holds the samples of trace i.
type Grid struct {
	traces  int
	samples int
	kind    dtype.Kind
	data    interface{}
}

// NewGrid wraps a flat row-major slice of traces*samples elements.
func NewGrid(traces, samples int, data interface{}) (*Grid, error) {
	kind, err := dtype.KindOf(data)
	if err != nil {
		return nil, err
	}
	if traces < 0 || samples < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "grid shape %dx%d", traces, samples)
	}
	if n := dtype.Len(data); n != traces*samples {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d elements for a %dx%d grid", n, traces, samples)
	}
	return &Grid{traces: traces, samples: samples, kind: kind, data: data}, nil
}

// GridFromRows copies equal-length rows, one per trace, into a Grid.
func GridFromRows[T Sample](rows [][]T) (*Grid, error) {
	samples := 0
	if len(rows) > 0 {
		samples = len(rows[0])
	}
	flat := make([]T, 0, len(rows)*samples)
	for i, r := range rows {
		if len(r) != samples {
			return nil, errors.Wrapf(ErrInvalidArgument, "row %d has %d samples, row 0 has %d", i, len(r), samples)
		}
		flat = append(flat, r...)
	}
	return NewGrid(len(rows), samples, flat)
}

// Values returns the grid's flat row-major slice as []T.
func Values[T Sample](g *Grid) ([]T, error) {
	v, ok := g.data.([]T)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "grid holds %T", g.data)
	}
	return v, nil
}

// Traces returns the number of rows.
func (g *Grid) Traces() int { return g.traces }

// Samples returns the number of columns.
func (g *Grid) Samples() int { return g.samples }

// Kind returns the element kind.
func (g *Grid) Kind() Kind { return g.kind }

// Data returns the flat row-major slice.
func (g *Grid) Data() interface{} { return g.data }

// Row returns the samples of trace i (0-based) as a typed slice sharing
// the grid's storage.
func (g *Grid) Row(i int) interface{} {
	return dtype.Slice(g.data, i*g.samples, (i+1)*g.samples)
}

// At returns sample j of trace i.
func (g *Grid) At(i, j int) float64 {
	return dtype.At(g.data, i*g.samples+j)
}

// Float64s returns a copy of every sample converted to float64.
func (g *Grid) Float64s() []float64 {
	out, _ := dtype.ToFloat64s(g.data)
	return out
}

// Dense returns the grid as a traces x samples matrix, or nil for an empty
// grid.
func (g *Grid) Dense() *mat.Dense {
	if g.traces == 0 || g.samples == 0 {
		return nil
	}
	return mat.NewDense(g.traces, g.samples, g.Float64s())
}

// Stats summarizes sample amplitudes.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	RMS    float64
}

// Stats computes amplitude statistics over every sample.
func (g *Grid) Stats() Stats {
	x := g.Float64s()
	if len(x) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0
	}
	return Stats{
		Count:  len(x),
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   mean,
		StdDev: std,
		RMS:    math.Sqrt(floats.Dot(x, x) / float64(len(x))),
	}
}
