package intmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/intmat"
)

func TestNewRejectsBadShape(t *testing.T) {
	require := require.New(t)

	_, err := intmat.New(0, 2)
	require.ErrorIs(err, intmat.ErrInvalidDimensions)
}

func TestAtSetRoundTrip(t *testing.T) {
	require := require.New(t)

	m, err := intmat.New(2, 3)
	require.NoError(err)
	require.NoError(m.Set(1, 2, -5))

	v, err := m.At(1, 2)
	require.NoError(err)
	require.Equal(int64(-5), v)

	_, err = m.At(5, 5)
	require.ErrorIs(err, intmat.ErrOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	require := require.New(t)

	m, _ := intmat.New(1, 1)
	_ = m.Set(0, 0, 7)
	c := m.Clone()
	_ = m.Set(0, 0, 9)

	v, _ := c.At(0, 0)
	require.Equal(int64(7), v)
}

func TestMul(t *testing.T) {
	require := require.New(t)

	a, _ := intmat.New(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 0, 3)
	_ = a.Set(1, 1, 4)

	id, err := intmat.Identity(2)
	require.NoError(err)

	out, err := a.Mul(id)
	require.NoError(err)
	v00, _ := out.At(0, 0)
	v11, _ := out.At(1, 1)
	require.Equal(int64(1), v00)
	require.Equal(int64(4), v11)

	_, err = a.Mul(&intmat.Matrix{})
	require.Error(err)
}

func TestRowColOps(t *testing.T) {
	require := require.New(t)

	m, _ := intmat.New(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 0, 2)

	require.NoError(m.SwapRows(0, 1))
	v, _ := m.At(0, 0)
	require.Equal(int64(2), v)

	require.NoError(m.AddRowMultiple(1, 0, 3))
	v, _ = m.At(1, 0)
	require.Equal(int64(7), v) // 1 + 3*2

	require.NoError(m.NegateRow(1))
	v, _ = m.At(1, 0)
	require.Equal(int64(-7), v)
}

func TestIsZero(t *testing.T) {
	require := require.New(t)

	m, _ := intmat.New(2, 2)
	require.True(m.IsZero())
	_ = m.Set(0, 0, 1)
	require.False(m.IsZero())
}
