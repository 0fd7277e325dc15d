package homology

import (
	"github.com/katalvlaran/simplicial/intmat"
	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
	"github.com/katalvlaran/simplicial/snf"
)

// buildGenerators returns one Generator per basis direction of
// H_k = ker(∂_k) / im(∂_{k+1}).
//
// ker(∂_k) is spanned by the last (n_k - r_k) columns of V_k (fk.v): those
// are exactly the columns SNF annihilates. Expressed in that basis, im(∂_{k+1})
// is the column space of M = (last n_k-r_k rows of Vinv_k) * ∂_{k+1} — a
// second, independent Smith Normal Form of M then gives a basis in which
// im(∂_{k+1}) is diagonal, so its invariant factors line up one-to-one with
// a transformed basis of ker(∂_k). Reusing ∂_{k+1}'s own SNF basis directly
// (skipping this second factorization) would leave the torsion/free split
// unaligned with ker(∂_k)'s basis, since the two factorizations are run
// independently and make unrelated pivot choices.
func buildGenerators(c *scx.Complex, k, topDim int, fk *factorization, solver snf.Solver) ([]Generator, error) {
	nk := c.Size(k)
	rk := fk.rank
	m := nk - rk
	if m == 0 {
		return nil, nil
	}

	cells := c.Cells(k)

	kerMat, err := intmat.New(nk, m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nk; i++ {
		for j := 0; j < m; j++ {
			v, _ := fk.v.At(i, rk+j)
			if err := kerMat.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	if k+1 > topDim {
		gens := make([]Generator, m)
		for j := 0; j < m; j++ {
			gens[j] = chainFromColumn(cells, kerMat, j, 0)
		}

		return gens, nil
	}

	b1, err := scx.BoundaryMatrix(c, k+1)
	if err != nil {
		return nil, err
	}

	vinvLast, err := intmat.New(m, nk)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < nk; j++ {
			v, _ := fk.vinv.At(rk+i, j)
			if err := vinvLast.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	mMat, err := vinvLast.Mul(b1)
	if err != nil {
		return nil, err
	}

	_, s2, _, uinv2, _, err := solver(mMat)
	if err != nil {
		return nil, err
	}
	rank2 := 0
	n2 := min(s2.Rows(), s2.Cols())
	factors2 := make([]int64, 0, n2)
	for i := 0; i < n2; i++ {
		e, _ := s2.At(i, i)
		if e != 0 {
			rank2++
			factors2 = append(factors2, e)
		}
	}

	newKer, err := kerMat.Mul(uinv2)
	if err != nil {
		return nil, err
	}

	var gens []Generator
	for i := 0; i < m; i++ {
		order := int64(0)
		if i < rank2 {
			f := factors2[i]
			if f <= 1 {
				continue // absorbed into the image entirely; no generator here
			}
			order = f
		}
		gens = append(gens, chainFromColumn(cells, newKer, i, order))
	}

	return gens, nil
}

func chainFromColumn(cells []simplex.Simplex, mat *intmat.Matrix, col int, order int64) Generator {
	var terms []simplex.Term
	for row := 0; row < mat.Rows(); row++ {
		coeff, _ := mat.At(row, col)
		if coeff != 0 {
			terms = append(terms, simplex.Term{Cell: cells[row], Coeff: coeff})
		}
	}
	chain, _ := simplex.NewChainFromTerms(terms...)

	return Generator{Chain: chain.Simplify(), TorsionOrder: order}
}
