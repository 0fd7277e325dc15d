package fixtures

import (
	"fmt"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

// methodMixedComplex tags errors raised while assembling MixedComplex.
const methodMixedComplex = "fixtures.MixedComplex"

// MixedComplex builds the textbook mixed complex C = {⟨1,2,3⟩, ⟨2,4⟩,
// ⟨3,4⟩, ⟨5,4⟩, ⟨6⟩} (with face closure), expected to have β = [2, 1, 0]:
// two connected components ({1,2,3,4,5} and {6}) and one independent
// 1-cycle around the square formed by the triangle's two free edges and
// the two pendant edges into vertex 4.
//
// Stage 1 (Cells): declare the top-level cells exactly as named.
// Stage 2 (Insert): add each cell recursively so its faces land first.
func MixedComplex() (*scx.Complex, error) {
	c := scx.New()

	cells := []simplex.Simplex{
		simplex.MustNew(1, 2, 3),
		simplex.MustNew(2, 4),
		simplex.MustNew(3, 4),
		simplex.MustNew(5, 4),
		simplex.MustNew(6),
	}
	for _, cell := range cells {
		if _, err := c.Add(cell, true); err != nil {
			return nil, fmt.Errorf("%s: Add(%s): %w", methodMixedComplex, cell, err)
		}
	}

	return c, nil
}
