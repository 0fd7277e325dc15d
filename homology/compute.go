package homology

import (
	"fmt"

	"github.com/katalvlaran/simplicial/intmat"
	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/snf"
)

// factorization caches one dimension's boundary-matrix Smith Normal Form,
// plus its rank and ascending nonzero diagonal (invariant factors,
// including any equal to 1).
type factorization struct {
	rank    int
	factors []int64
	u, s, v *intmat.Matrix
	uinv    *intmat.Matrix
	vinv    *intmat.Matrix
}

// Compute returns the homology of c: one Group per dimension 0..c.Dim(),
// each carrying its Betti number and torsion coefficients. With
// WithGenerators, each Group additionally carries explicit
// representative chains.
//
// Stage 1 (Factorize): run the solver on ∂_d for every dimension d present
// in c.
// Stage 2 (Assemble): derive β_k = (n_k - r_k) - r_{k+1} and H_k's torsion
// from the ranks and invariant factors of ∂_k, ∂_{k+1}.
// Stage 3 (Generators, optional): build explicit representative chains.
func Compute(c *scx.Complex, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	solver := o.resolveSolver()

	d := c.Dim()
	if d < 0 {
		return &Result{}, nil
	}

	factorizations := make([]*factorization, d+1)
	for k := 0; k <= d; k++ {
		b, err := scx.BoundaryMatrix(c, k)
		if err != nil {
			return nil, fmt.Errorf("homology.Compute: boundary matrix dim %d: %w", k, err)
		}

		f, err := factorize(solver, b)
		if err != nil {
			return nil, fmt.Errorf("homology.Compute: SNF dim %d: %w", k, err)
		}
		factorizations[k] = f
	}

	groups := make([]Group, d+1)
	for k := 0; k <= d; k++ {
		nk := c.Size(k)
		rk := factorizations[k].rank

		var next *factorization
		rk1 := 0
		if k+1 <= d {
			next = factorizations[k+1]
			rk1 = next.rank
		}

		group := Group{
			Dim:   k,
			Betti: (nk - rk) - rk1,
		}
		if next != nil {
			for _, f := range next.factors {
				if f > 1 {
					group.Torsion = append(group.Torsion, f)
				}
			}
		}

		if o.withGenerators {
			gens, err := buildGenerators(c, k, d, factorizations[k], solver)
			if err != nil {
				return nil, fmt.Errorf("homology.Compute: generators dim %d: %w", k, err)
			}
			group.Generators = gens
		}

		groups[k] = group
	}

	return &Result{Groups: groups}, nil
}

func factorize(solver snf.Solver, b *intmat.Matrix) (*factorization, error) {
	u, s, v, uinv, vinv, err := solver(b)
	if err != nil {
		return nil, err
	}

	rank := 0
	n := min(s.Rows(), s.Cols())
	factors := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		e, _ := s.At(i, i)
		if e != 0 {
			rank++
			factors = append(factors, e)
		}
	}

	return &factorization{rank: rank, factors: factors, u: u, s: s, v: v, uinv: uinv, vinv: vinv}, nil
}
