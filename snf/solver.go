package snf

import (
	"fmt"

	"github.com/katalvlaran/simplicial/intmat"
)

// overflowBound caps the magnitude any intermediate entry may reach
// during reduction. Boundary matrices start with entries in {-1,0,1};
// this bound is generous enough for any complex this library can build
// in memory while still catching genuine runaway growth.
const overflowBound = int64(1) << 40

// Factorize is the library's default Solver: Smith Normal Form via
// Bezout row/column reduction.
//
// Stage 1 (Prepare): clone b into S, start U/V/Uinv/Vinv at identity.
// Stage 2 (Execute): for each pivot position t, select a nonzero entry,
// move it to (t,t), and eliminate the rest of row t and column t via
// unimodular 2x2 combinations (extended Euclid). If some entry outside
// the cleared cross fails to be divisible by the pivot, fold it into the
// pivot row and re-clear — the standard extra step that turns a merely
// diagonal form into one with the invariant-factor divisibility chain.
// Stage 3 (Finalize): normalize pivot signs to nonnegative.
func Factorize(b *intmat.Matrix) (u, s, v, uinv, vinv *intmat.Matrix, err error) {
	rows, cols := b.Rows(), b.Cols()

	s = b.Clone()
	if u, err = intmat.Identity(rows); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if uinv, err = intmat.Identity(rows); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if v, err = intmat.Identity(cols); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	if vinv, err = intmat.Identity(cols); err != nil {
		return nil, nil, nil, nil, nil, err
	}

	limit := min(rows, cols)
	// Each pivot may be revisited a bounded number of times by the
	// divisibility-folding step; cap total outer iterations generously
	// to surface a pathological case as ErrNonTermination rather than
	// looping forever.
	maxIterations := (limit + 1) * (rows + cols + 8)
	iterations := 0

	for t := 0; t < limit; {
		iterations++
		if iterations > maxIterations {
			return nil, nil, nil, nil, nil, fmt.Errorf("snf.Factorize: pivot %d: %w", t, ErrNonTermination)
		}

		pr, pc, found := findPivot(s, t)
		if !found {
			break // remaining submatrix is all zero; factorization is done
		}
		if pr != t {
			if err := swapRowTriple(s, u, uinv, t, pr); err != nil {
				return nil, nil, nil, nil, nil, err
			}
		}
		if pc != t {
			if err := swapColTriple(s, v, vinv, t, pc); err != nil {
				return nil, nil, nil, nil, nil, err
			}
		}

		if err := clearCross(s, u, v, uinv, vinv, t); err != nil {
			return nil, nil, nil, nil, nil, err
		}

		folded, err := foldNonDivisible(s, u, uinv, t)
		if err != nil {
			return nil, nil, nil, nil, nil, err
		}
		if folded {
			continue // pivot row changed; re-clear and re-check before advancing
		}

		if err := normalizePivotSign(s, u, uinv, t); err != nil {
			return nil, nil, nil, nil, nil, err
		}

		if err := checkBound(s); err != nil {
			return nil, nil, nil, nil, nil, err
		}

		t++
	}

	return u, s, v, uinv, vinv, nil
}

// findPivot scans S[t:,t:] for the smallest-magnitude nonzero entry,
// returning its position. Preferring the smallest magnitude keeps the
// Bezout combinations below from growing entries any faster than
// necessary.
func findPivot(s *intmat.Matrix, t int) (row, col int, found bool) {
	best := int64(0)
	for i := t; i < s.Rows(); i++ {
		for j := t; j < s.Cols(); j++ {
			v, _ := s.At(i, j)
			if v == 0 {
				continue
			}
			av := abs(v)
			if !found || av < best {
				found = true
				best = av
				row, col = i, j
			}
		}
	}

	return row, col, found
}

// swapRowTriple swaps rows i,j of S and U, and the matching columns of
// Uinv (a row swap is its own inverse, and applying it to Uinv via
// right-multiplication by its inverse swaps columns instead of rows).
func swapRowTriple(s, u, uinv *intmat.Matrix, i, j int) error {
	if err := s.SwapRows(i, j); err != nil {
		return err
	}
	if err := u.SwapRows(i, j); err != nil {
		return err
	}

	return uinv.SwapCols(i, j)
}

// swapColTriple is swapRowTriple's column-operation counterpart for
// S, V, Vinv.
func swapColTriple(s, v, vinv *intmat.Matrix, i, j int) error {
	if err := s.SwapCols(i, j); err != nil {
		return err
	}
	if err := v.SwapCols(i, j); err != nil {
		return err
	}

	return vinv.SwapRows(i, j)
}

// clearCross eliminates every nonzero entry in column t (below the
// pivot) and row t (right of the pivot) via Bezout row/column
// combinations, repeating until a pass introduces no change: a single
// combination can, in principle, touch other entries in the cross it
// hasn't visited yet.
func clearCross(s, u, v, uinv, vinv *intmat.Matrix, t int) error {
	for {
		changed := false

		for i := t + 1; i < s.Rows(); i++ {
			b, _ := s.At(i, t)
			if b == 0 {
				continue
			}
			if err := bezoutClearRow(s, u, uinv, t, i); err != nil {
				return err
			}
			changed = true
		}

		for j := t + 1; j < s.Cols(); j++ {
			b, _ := s.At(t, j)
			if b == 0 {
				continue
			}
			if err := bezoutClearCol(s, v, vinv, t, j); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return nil
		}
		if err := checkBound(s); err != nil {
			return err
		}
	}
}

// bezoutClearRow zeroes S[i][t] using row t, via the unimodular 2x2
// combination derived from the extended Euclidean algorithm on
// (a, b) = (S[t][t], S[i][t]):
//
//	M     = [[x,  y ], [-q,  p]]   (applied to rows t,i of S and U)
//	M^-1  = [[p, -y ], [ q,  x]]   (applied, via column combine, to Uinv)
//
// where g = gcd(a,b), a = p*g, b = q*g, and a*x + b*y = g.
func bezoutClearRow(s, u, uinv *intmat.Matrix, t, i int) error {
	a, _ := s.At(t, t)
	b, _ := s.At(i, t)
	g, x, y := extgcd(a, b)
	if g == 0 {
		return nil
	}
	p, q := a/g, b/g

	if err := rowCombine2(s, t, i, x, y, -q, p); err != nil {
		return err
	}
	if err := rowCombine2(u, t, i, x, y, -q, p); err != nil {
		return err
	}

	return colCombine2(uinv, t, i, p, -y, q, x)
}

// bezoutClearCol is bezoutClearRow's column-operation counterpart,
// zeroing S[t][j] using column t.
func bezoutClearCol(s, v, vinv *intmat.Matrix, t, j int) error {
	a, _ := s.At(t, t)
	b, _ := s.At(t, j)
	g, x, y := extgcd(a, b)
	if g == 0 {
		return nil
	}
	p, q := a/g, b/g

	if err := colCombine2(s, t, j, x, -q, y, p); err != nil {
		return err
	}
	if err := colCombine2(v, t, j, x, -q, y, p); err != nil {
		return err
	}

	return rowCombine2(vinv, t, j, p, q, -y, x)
}

// foldNonDivisible checks whether every entry of S's remaining
// submatrix (rows/cols > t) is divisible by the pivot S[t][t]. If not,
// the first offending row is added into the pivot row — an elementary,
// unimodular operation — which the caller must follow with another
// clearCross pass before re-checking divisibility.
func foldNonDivisible(s, u, uinv *intmat.Matrix, t int) (folded bool, err error) {
	pivot, _ := s.At(t, t)
	if pivot == 0 {
		return false, nil
	}

	for i := t + 1; i < s.Rows(); i++ {
		for j := t + 1; j < s.Cols(); j++ {
			v, _ := s.At(i, j)
			if v%pivot != 0 {
				if err := s.AddRowMultiple(t, i, 1); err != nil {
					return false, err
				}
				if err := u.AddRowMultiple(t, i, 1); err != nil {
					return false, err
				}
				if err := uinv.AddColMultiple(i, t, -1); err != nil {
					return false, err
				}

				return true, checkBound(s)
			}
		}
	}

	return false, nil
}

// normalizePivotSign flips the sign of row t (in S and U, and the
// matching column of Uinv) so invariant factors come out nonnegative.
func normalizePivotSign(s, u, uinv *intmat.Matrix, t int) error {
	pivot, _ := s.At(t, t)
	if pivot >= 0 {
		return nil
	}
	if err := s.NegateRow(t); err != nil {
		return err
	}
	if err := u.NegateRow(t); err != nil {
		return err
	}

	return uinv.NegateCol(t)
}

// rowCombine2 replaces rows r1, r2 of mat with the unimodular
// combination new_r1 = n00*r1 + n01*r2, new_r2 = n10*r1 + n11*r2,
// computed from the old row values.
func rowCombine2(mat *intmat.Matrix, r1, r2 int, n00, n01, n10, n11 int64) error {
	cols := mat.Cols()
	old1 := make([]int64, cols)
	old2 := make([]int64, cols)
	for j := 0; j < cols; j++ {
		old1[j], _ = mat.At(r1, j)
		old2[j], _ = mat.At(r2, j)
	}
	for j := 0; j < cols; j++ {
		if err := mat.Set(r1, j, n00*old1[j]+n01*old2[j]); err != nil {
			return err
		}
		if err := mat.Set(r2, j, n10*old1[j]+n11*old2[j]); err != nil {
			return err
		}
	}

	return nil
}

// colCombine2 replaces columns c1, c2 of mat with new_c1 = m00*c1 +
// m10*c2, new_c2 = m01*c1 + m11*c2, computed from the old column
// values.
func colCombine2(mat *intmat.Matrix, c1, c2 int, m00, m01, m10, m11 int64) error {
	rows := mat.Rows()
	old1 := make([]int64, rows)
	old2 := make([]int64, rows)
	for i := 0; i < rows; i++ {
		old1[i], _ = mat.At(i, c1)
		old2[i], _ = mat.At(i, c2)
	}
	for i := 0; i < rows; i++ {
		if err := mat.Set(i, c1, m00*old1[i]+m10*old2[i]); err != nil {
			return err
		}
		if err := mat.Set(i, c2, m01*old1[i]+m11*old2[i]); err != nil {
			return err
		}
	}

	return nil
}

// extgcd returns (g, x, y) with a*x + b*y = g = gcd(|a|, |b|) (g >= 0).
// Handles a == 0 or b == 0 as the degenerate base cases. When a divides
// b it returns (|a|, sign(a), 0), so a Bezout step keeps the pivot
// row/column in place and only subtracts a multiple of it.
func extgcd(a, b int64) (g, x, y int64) {
	if a == 0 {
		return abs(b), 0, sign(b)
	}
	if b%a == 0 {
		return abs(a), sign(a), 0
	}

	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// checkBound reports ErrOverflow if any entry of s has grown past the
// safe reduction bound.
func checkBound(s *intmat.Matrix) error {
	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			v, _ := s.At(i, j)
			if abs(v) > overflowBound {
				return fmt.Errorf("snf.Factorize: entry (%d,%d)=%d: %w", i, j, v, ErrOverflow)
			}
		}
	}

	return nil
}
