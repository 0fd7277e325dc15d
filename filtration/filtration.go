package filtration

import (
	"sort"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

// WeightFunc reports the filtration value of a cell, and whether one
// was recorded for it. vr.Weights.Get satisfies this signature, so the
// method value w.Get of a *vr.Weights w can be passed as New's weights
// argument without this package importing vr.
type WeightFunc func(s simplex.Simplex) (float64, bool)

// entry is one row of T: the (dimension, index) address of a cell and
// the scale at which it enters the filtration.
type entry struct {
	dim   int
	index int
	value float64
}

// Filtration pairs a complex with T, the total order over its cells by
// (value ascending, dimension ascending).
type Filtration struct {
	complex *scx.Complex
	t       []entry
}

// New assembles a Filtration over c. If weights is non-nil, each cell's
// value comes from weights; cells weights reports nothing for fall back
// to their 1-based rank in dimension-major order (every 0-cell in index
// order, then every 1-cell, and so on, one counter across dimensions).
// If weights is nil, every cell's value is that rank.
//
// Stage 1 (Prepare): walk every dimension in order, assigning a value
// to each cell.
// Stage 2 (Finalize): stable-sort T by (value, dimension).
func New(c *scx.Complex, weights WeightFunc) *Filtration {
	f := &Filtration{complex: c}

	counter := 0
	for d := 0; d <= c.Dim(); d++ {
		cells := c.Cells(d)
		for i, cell := range cells {
			counter++
			value := float64(counter)
			if weights != nil {
				if v, ok := weights(cell); ok {
					value = v
				}
			}
			f.t = append(f.t, entry{dim: d, index: i + 1, value: value})
		}
	}

	sort.SliceStable(f.t, func(i, j int) bool {
		if f.t[i].value != f.t[j].value {
			return f.t[i].value < f.t[j].value
		}

		return f.t[i].dim < f.t[j].dim
	})

	return f
}

// Complex returns the underlying complex. Mutating it outside Push
// desynchronizes T from C; callers should only grow a filtration's
// complex via Push.
func (f *Filtration) Complex() *scx.Complex {
	return f.complex
}

// Len returns the number of cells currently in T.
func (f *Filtration) Len() int {
	return len(f.t)
}

// Entry pairs a cell with its filtration value, in T order.
type Entry struct {
	Cell  simplex.Simplex
	Value float64
}

// Entries returns every (cell, value) pair in T order. Used by
// serialize.WriteFiltration; exported so other consumers of a
// Filtration can walk T without reaching into unexported state.
func (f *Filtration) Entries() ([]Entry, error) {
	out := make([]Entry, len(f.t))
	for i, e := range f.t {
		cell, err := f.complex.CellAt(e.index, e.dim)
		if err != nil {
			return nil, err
		}
		out[i] = Entry{Cell: cell, Value: e.value}
	}

	return out, nil
}

// Push inserts sigma into the underlying complex at filtration value v
// and splices every newly created cell into T. Newly created faces
// inherit v, matching the recursive closure performed by Complex.Add.
//
// Stage 1 (Execute): insert sigma (and, if recursive, its missing
// faces) into the complex.
// Stage 2 (Splice): append one T entry per newly inserted cell, then
// re-stabilize T's global (value, dimension) order. A full stable
// resort is used instead of a targeted splice-point search; Push is
// not on a hot path here, so the simpler implementation is preferred
// over hand-rolled insertion-point search.
func (f *Filtration) Push(sigma simplex.Simplex, v float64, recursive bool) ([]simplex.Simplex, error) {
	inserted, err := f.complex.Add(sigma, recursive)
	if err != nil {
		return nil, err
	}

	for _, cell := range inserted {
		f.t = append(f.t, entry{dim: cell.Dim(), index: f.complex.IndexOf(cell), value: v})
	}

	sort.SliceStable(f.t, func(i, j int) bool {
		if f.t[i].value != f.t[j].value {
			return f.t[i].value < f.t[j].value
		}

		return f.t[i].dim < f.t[j].dim
	})

	return inserted, nil
}
