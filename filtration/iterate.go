package filtration

import "fmt"

// Infinite requests one step per distinct filtration value ("divisions
// = ∞"). Pass it to Iterate to disable step aggregation.
const Infinite = 0

// CellRef addresses one cell by its stable (dimension, index) position
// within the underlying complex.
type CellRef struct {
	Dim   int
	Index int
}

// Step is one emitted point of a filtration walk: a value (or the
// upper bound of a division's half-open interval) and every cell that
// falls into it.
type Step struct {
	Value float64
	Cells []CellRef
}

// Iterate walks T and groups cells into steps. With divisions ==
// Infinite, one step is emitted per distinct value present in T. With
// divisions == N > 0, the value range [min, max] is split into N
// equal-width half-open intervals and every cell is assigned to the
// interval containing its value (the final interval is closed on both
// ends so the maximum value is included).
func (f *Filtration) Iterate(divisions int) ([]Step, error) {
	if divisions < 0 {
		return nil, fmt.Errorf("filtration.Iterate: %d: %w", divisions, ErrInvalidDivisions)
	}
	if len(f.t) == 0 {
		return nil, ErrEmptyFiltration
	}

	if divisions == Infinite {
		return f.iterateByDistinctValue(), nil
	}

	return f.iterateByDivisions(divisions), nil
}

func (f *Filtration) iterateByDistinctValue() []Step {
	var steps []Step
	for _, e := range f.t {
		n := len(steps)
		if n == 0 || steps[n-1].Value != e.value {
			steps = append(steps, Step{Value: e.value})
			n++
		}
		steps[n-1].Cells = append(steps[n-1].Cells, CellRef{Dim: e.dim, Index: e.index})
	}

	return steps
}

func (f *Filtration) iterateByDivisions(divisions int) []Step {
	minV, maxV := f.t[0].value, f.t[0].value
	for _, e := range f.t {
		if e.value < minV {
			minV = e.value
		}
		if e.value > maxV {
			maxV = e.value
		}
	}

	steps := make([]Step, divisions)
	width := (maxV - minV) / float64(divisions)
	for i := range steps {
		if width == 0 {
			steps[i].Value = maxV
		} else {
			steps[i].Value = minV + width*float64(i+1)
		}
	}

	for _, e := range f.t {
		bucket := divisions - 1
		if width > 0 {
			b := int((e.value - minV) / width)
			if b < divisions {
				bucket = b
			}
		}
		steps[bucket].Cells = append(steps[bucket].Cells, CellRef{Dim: e.dim, Index: e.index})
	}

	var out []Step
	for _, s := range steps {
		if len(s.Cells) > 0 {
			out = append(out, s)
		}
	}

	return out
}
