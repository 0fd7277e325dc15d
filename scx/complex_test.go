package scx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

func TestAdd_NonRecursiveRequiresFaces(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, err := c.Add(simplex.MustNew(1, 2), false)
	require.ErrorIs(err, scx.ErrFaceMissing)

	_, err = c.Add(simplex.MustNew(1), false)
	require.NoError(err)
	_, err = c.Add(simplex.MustNew(2), false)
	require.NoError(err)
	inserted, err := c.Add(simplex.MustNew(1, 2), false)
	require.NoError(err)
	require.Len(inserted, 1)
}

func TestAdd_RecursiveClosesFaces(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	inserted, err := c.Add(simplex.MustNew(1, 2, 3), true)
	require.NoError(err)
	require.Len(inserted, 7, "3 vertices + 3 edges + 1 triangle")

	for _, v := range []int{1, 2, 3} {
		require.True(c.Has(simplex.MustNew(v)))
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}} {
		require.True(c.Has(simplex.MustNew(e[0], e[1])))
	}
}

func TestAdd_Idempotent(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, err := c.Add(simplex.MustNew(1, 2), true)
	require.NoError(err)

	inserted, err := c.Add(simplex.MustNew(1, 2), true)
	require.NoError(err)
	require.Empty(inserted)
}

func TestIndexOf_SentinelForAbsent(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, _ = c.Add(simplex.MustNew(1), false)
	_, _ = c.Add(simplex.MustNew(2), false)

	require.Equal(1, c.IndexOf(simplex.MustNew(1)))
	require.Equal(2, c.IndexOf(simplex.MustNew(2)))
	require.Equal(3, c.IndexOf(simplex.MustNew(3)), "absent cell reports size+1 sentinel")
}

func TestCellAt_InverseOfIndexOf(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, _ = c.Add(simplex.MustNew(1, 2, 3), true)

	for d := 0; d <= 2; d++ {
		for i := 1; i <= c.Size(d); i++ {
			cell, err := c.CellAt(i, d)
			require.NoError(err)
			require.Equal(i, c.IndexOf(cell))
		}
	}

	_, err := c.CellAt(99, 0)
	require.ErrorIs(err, scx.ErrCellNotFound)
}

func TestDim(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	require.Equal(-1, c.Dim())
	_, _ = c.Add(simplex.MustNew(1, 2, 3), true)
	require.Equal(2, c.Dim())
}
