package snf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/intmat"
	"github.com/katalvlaran/simplicial/snf"
)

func buildMatrix(t *testing.T, rows, cols int, vals [][]int64) *intmat.Matrix {
	t.Helper()
	require := require.New(t)

	m, err := intmat.New(rows, cols)
	require.NoError(err)
	for i, row := range vals {
		for j, v := range row {
			require.NoError(m.Set(i, j, v))
		}
	}

	return m
}

func assertUBVEqualsS(t *testing.T, u, b, v, s *intmat.Matrix) {
	t.Helper()
	require := require.New(t)

	ub, err := u.Mul(b)
	require.NoError(err)
	ubv, err := ub.Mul(v)
	require.NoError(err)

	for i := 0; i < s.Rows(); i++ {
		for j := 0; j < s.Cols(); j++ {
			got, _ := ubv.At(i, j)
			want, _ := s.At(i, j)
			require.Equal(want, got, "(%d,%d)", i, j)
		}
	}
}

func assertInverse(t *testing.T, m, minv *intmat.Matrix) {
	t.Helper()
	require := require.New(t)

	prod, err := m.Mul(minv)
	require.NoError(err)
	id, err := intmat.Identity(m.Rows())
	require.NoError(err)
	for i := 0; i < id.Rows(); i++ {
		for j := 0; j < id.Cols(); j++ {
			got, _ := prod.At(i, j)
			want, _ := id.At(i, j)
			require.Equal(want, got, "(%d,%d)", i, j)
		}
	}
}

func TestFactorize_DiagonalInput(t *testing.T) {
	require := require.New(t)

	b := buildMatrix(t, 2, 2, [][]int64{{2, 0}, {0, 4}})
	u, s, v, uinv, vinv, err := snf.Factorize(b)
	require.NoError(err)

	assertUBVEqualsS(t, u, b, v, s)
	assertInverse(t, u, uinv)
	assertInverse(t, v, vinv)

	d0, _ := s.At(0, 0)
	d1, _ := s.At(1, 1)
	require.Equal(int64(2), d0)
	require.Equal(int64(4), d1)
}

func TestFactorize_TriangleBoundaryMatrix(t *testing.T) {
	// The boundary matrix of a filled triangle {1,2,3}, edges order
	// [{2,3},{1,3},{1,2}]: column is the alternating sum of faces.
	require := require.New(t)

	b := buildMatrix(t, 3, 1, [][]int64{{1}, {-1}, {1}})
	u, s, v, uinv, vinv, err := snf.Factorize(b)
	require.NoError(err)

	assertUBVEqualsS(t, u, b, v, s)
	assertInverse(t, u, uinv)
	assertInverse(t, v, vinv)

	d0, _ := s.At(0, 0)
	require.Equal(int64(1), d0)
	for i := 1; i < 3; i++ {
		v, _ := s.At(i, 0)
		require.Equal(int64(0), v)
	}
}

func TestFactorize_NonTrivialInvariantFactors(t *testing.T) {
	require := require.New(t)

	b := buildMatrix(t, 2, 2, [][]int64{{2, 4}, {4, 2}})
	u, s, v, uinv, vinv, err := snf.Factorize(b)
	require.NoError(err)

	assertUBVEqualsS(t, u, b, v, s)
	assertInverse(t, u, uinv)
	assertInverse(t, v, vinv)

	d0, _ := s.At(0, 0)
	d1, _ := s.At(1, 1)
	require.Equal(int64(2), d0)
	require.Equal(int64(6), d1)
	off1, _ := s.At(0, 1)
	off2, _ := s.At(1, 0)
	require.Equal(int64(0), off1)
	require.Equal(int64(0), off2)
}

func TestFactorize_ZeroMatrix(t *testing.T) {
	require := require.New(t)

	b := buildMatrix(t, 2, 3, [][]int64{{0, 0, 0}, {0, 0, 0}})
	u, s, v, uinv, vinv, err := snf.Factorize(b)
	require.NoError(err)
	require.True(s.IsZero())
	assertUBVEqualsS(t, u, b, v, s)
	assertInverse(t, u, uinv)
	assertInverse(t, v, vinv)
}

func TestSetDefault_OverridesFactorize(t *testing.T) {
	require := require.New(t)

	called := false
	snf.SetDefault(func(b *intmat.Matrix) (*intmat.Matrix, *intmat.Matrix, *intmat.Matrix, *intmat.Matrix, *intmat.Matrix, error) {
		called = true

		return snf.Factorize(b)
	})
	defer snf.SetDefault(snf.Factorize)

	b := buildMatrix(t, 1, 1, [][]int64{{5}})
	_, _, _, _, _, err := snf.Default()(b)
	require.NoError(err)
	require.True(called)
}
