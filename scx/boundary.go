package scx

import (
	"fmt"

	"github.com/katalvlaran/simplicial/intmat"
	"github.com/katalvlaran/simplicial/simplex"
)

// Boundary returns ∂(s) as a (dim(s)-1)-chain: for d ≥ 1 the alternating
// sum Σᵢ (-1)ⁱ · faceᵢ(s) using Simplex.Faces' "remove index 0 first"
// order; for d = 0, the zero chain. Boundary does not require s to be a
// member of c — it is a pure function of s — but BoundaryMatrix below
// requires every face actually be present.
func Boundary(s simplex.Simplex) simplex.Chain {
	faces := s.Faces()
	if len(faces) == 0 {
		return simplex.NewChain()
	}

	c := simplex.NewChain()
	for i, f := range faces {
		sign := int64(1)
		if i%2 == 1 {
			sign = -1
		}
		// With never fails here: every face shares dimension dim(s)-1.
		c, _ = c.With(sign, f)
	}

	return c
}

// BoundaryMatrix assembles the m×n integer matrix for ∂_d : C_d -> C_{d-1},
// where m = Size(c, d-1) and n = Size(c, d). Entry (i, j) is the
// coefficient of the i-th (d-1)-cell in the boundary of the j-th d-cell.
// Every face referenced by a d-cell must already be present in c (true
// of any complex built via Add's face closure); a missing face surfaces
// as ErrCellNotFound.
//
// d = 0 returns a 1 x Size(c,0) zero matrix (∂_0 is the zero map onto a
// formally empty (-1)-dimensional chain group, represented here with one
// row so the matrix remains well-formed for downstream SNF).
func BoundaryMatrix(c *Complex, d int) (*intmat.Matrix, error) {
	n := c.Size(d)
	if d == 0 {
		m, err := intmat.New(1, maxInt(n, 1))
		if err != nil {
			return nil, err
		}

		return m, nil
	}

	rows := c.Size(d - 1)
	cols := n
	mat, err := intmat.New(maxInt(rows, 1), maxInt(cols, 1))
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return mat, nil
	}

	for j := 1; j <= cols; j++ {
		cell, err := c.CellAt(j, d)
		if err != nil {
			return nil, fmt.Errorf("scx.BoundaryMatrix: %w", err)
		}
		for _, t := range Boundary(cell).Simplify().Terms() {
			i := c.IndexOf(t.Cell)
			if i > rows {
				return nil, fmt.Errorf("scx.BoundaryMatrix: face %s of %s not present in complex: %w", t.Cell, cell, ErrCellNotFound)
			}
			if err := mat.Set(i-1, j-1, t.Coeff); err != nil {
				return nil, fmt.Errorf("scx.BoundaryMatrix: %w", err)
			}
		}
	}

	return mat, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
