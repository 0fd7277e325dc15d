package scx

import (
	"fmt"

	"github.com/katalvlaran/simplicial/simplex"
)

// dimTable holds every cell of one dimension, indexed both by insertion
// order (cells) and by key (index, for O(1) membership/lookup): cells is
// the ordered storage, index is the fast-lookup side table.
type dimTable struct {
	cells []simplex.Simplex
	index map[string]int // cell key -> 1-based index within cells
}

// Complex is a collection of simplices closed under the face relation:
// if σ ∈ C then every face of σ ∈ C. Cells are partitioned by dimension;
// within a dimension, insertion order fixes each cell's stable 1-based
// index.
type Complex struct {
	dims []dimTable // dims[d] holds all d-cells; grows lazily as dimensions are populated
}

// New returns an empty complex.
func New() *Complex {
	return &Complex{}
}

func (c *Complex) ensureDim(d int) *dimTable {
	for len(c.dims) <= d {
		c.dims = append(c.dims, dimTable{index: make(map[string]int)})
	}

	return &c.dims[d]
}

// Dim returns the highest dimension with at least one cell, or -1 if the
// complex is empty.
func (c *Complex) Dim() int {
	for d := len(c.dims) - 1; d >= 0; d-- {
		if len(c.dims[d].cells) > 0 {
			return d
		}
	}

	return -1
}

// Size returns the number of d-cells in c. A dimension that was never
// populated reports size 0.
func (c *Complex) Size(d int) int {
	if d < 0 || d >= len(c.dims) {
		return 0
	}

	return len(c.dims[d].cells)
}

// Cells returns the d-cells of c in index order (index 1 first). The
// returned slice is a copy of the stored simplices; mutating it does not
// affect c (Simplex itself is immutable in any case).
func (c *Complex) Cells(d int) []simplex.Simplex {
	if d < 0 || d >= len(c.dims) {
		return nil
	}
	out := make([]simplex.Simplex, len(c.dims[d].cells))
	copy(out, c.dims[d].cells)

	return out
}

// IndexOf returns the 1-based index of s within dimension s.Dim(), or
// Size(s.Dim())+1 if s is absent — a sentinel value greater than any
// valid index in that dimension.
func (c *Complex) IndexOf(s simplex.Simplex) int {
	d := s.Dim()
	if d < 0 || d >= len(c.dims) {
		return 1
	}
	if idx, ok := c.dims[d].index[s.Key()]; ok {
		return idx
	}

	return len(c.dims[d].cells) + 1
}

// Has reports whether s is present in c.
func (c *Complex) Has(s simplex.Simplex) bool {
	d := s.Dim()
	if d < 0 || d >= len(c.dims) {
		return false
	}
	_, ok := c.dims[d].index[s.Key()]

	return ok
}

// CellAt performs the inverse lookup of IndexOf: the cell at 1-based
// index i within dimension d. Returns ErrInvalidDimension or
// ErrCellNotFound for out-of-range arguments.
func (c *Complex) CellAt(i, d int) (simplex.Simplex, error) {
	if d < 0 || d >= len(c.dims) {
		return simplex.Simplex{}, fmt.Errorf("scx.Complex.CellAt: dim %d: %w", d, ErrInvalidDimension)
	}
	if i < 1 || i > len(c.dims[d].cells) {
		return simplex.Simplex{}, fmt.Errorf("scx.Complex.CellAt: index %d in dim %d: %w", i, d, ErrCellNotFound)
	}

	return c.dims[d].cells[i-1], nil
}

// Add inserts s into c. If recursive is true, every face of s not
// already present is inserted first (depth-first, so faces-of-faces
// land before their parents), then s itself; newly inserted cells are
// returned in insertion order. If recursive is false and any face of s
// is absent, Add fails with ErrFaceMissing and leaves c unmodified.
//
// If s is already present, Add is a no-op and returns an empty slice.
func (c *Complex) Add(s simplex.Simplex, recursive bool) ([]simplex.Simplex, error) {
	if c.Has(s) {
		return nil, nil
	}

	if !recursive {
		for _, f := range s.Faces() {
			if !c.Has(f) {
				return nil, fmt.Errorf("scx.Complex.Add: face %s of %s missing: %w", f, s, ErrFaceMissing)
			}
		}
		c.insert(s)

		return []simplex.Simplex{s}, nil
	}

	var inserted []simplex.Simplex
	for _, f := range s.Faces() {
		if c.Has(f) {
			continue
		}
		sub, err := c.Add(f, true)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, sub...)
	}
	c.insert(s)
	inserted = append(inserted, s)

	return inserted, nil
}

// insert appends s to its dimension's cell list and assigns its index.
// Caller must have already verified s is absent.
func (c *Complex) insert(s simplex.Simplex) {
	t := c.ensureDim(s.Dim())
	t.cells = append(t.cells, s)
	t.index[s.Key()] = len(t.cells)
}
