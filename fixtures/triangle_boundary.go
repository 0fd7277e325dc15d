package fixtures

import (
	"fmt"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

const methodTriangleBoundary = "fixtures.TriangleBoundary"

// TriangleBoundary builds C = {⟨1,2⟩, ⟨2,3⟩, ⟨3,1⟩}: the hollow triangle,
// three edges and their vertices with no filling 2-cell. Expected
// β = [1, 1] — one connected component, one independent cycle. Built
// directly rather than via vr, since a distance-based construction at
// any ε large enough to admit all three edges would also admit the
// 2-cell they bound.
func TriangleBoundary() (*scx.Complex, error) {
	c := scx.New()

	edges := []simplex.Simplex{
		simplex.MustNew(1, 2),
		simplex.MustNew(2, 3),
		simplex.MustNew(3, 1),
	}
	for _, e := range edges {
		if _, err := c.Add(e, true); err != nil {
			return nil, fmt.Errorf("%s: Add(%s): %w", methodTriangleBoundary, e, err)
		}
	}

	return c, nil
}
