package scx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

func TestBoundary_VertexIsZero(t *testing.T) {
	require := require.New(t)

	b := scx.Boundary(simplex.MustNew(1))
	require.True(b.IsZero())
}

func TestBoundary_EdgeIsDifferenceOfVertices(t *testing.T) {
	require := require.New(t)

	b := scx.Boundary(simplex.MustNew(1, 2)).Simplify()
	terms := b.Terms()
	require.Len(terms, 2)
	require.True(terms[0].Cell.Equal(simplex.MustNew(1)))
	require.Equal(int64(-1), terms[0].Coeff) // {1} is face 1 (omits vertex 2), so its sign is -1
}

func TestBoundary_TriangleSigns(t *testing.T) {
	require := require.New(t)

	tri := simplex.MustNew(1, 2, 3)
	b := scx.Boundary(tri).Simplify()
	// faces in Faces() order: {2,3} (+), {1,3} (-), {1,2} (+)
	want := map[string]int64{
		simplex.MustNew(2, 3).Key(): 1,
		simplex.MustNew(1, 3).Key(): -1,
		simplex.MustNew(1, 2).Key(): 1,
	}
	require.Len(b.Terms(), 3)
	for _, term := range b.Terms() {
		require.Equal(want[term.Cell.Key()], term.Coeff)
	}
}

func TestBoundaryMatrix_TriangleShapeAndNullity(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, err := c.Add(simplex.MustNew(1, 2, 3), true)
	require.NoError(err)

	b1, err := scx.BoundaryMatrix(c, 1)
	require.NoError(err)
	require.Equal(3, b1.Rows()) // 3 vertices
	require.Equal(3, b1.Cols()) // 3 edges

	b2, err := scx.BoundaryMatrix(c, 2)
	require.NoError(err)
	require.Equal(3, b2.Rows()) // 3 edges
	require.Equal(1, b2.Cols()) // 1 triangle

	prod, err := b1.Mul(b2)
	require.NoError(err)
	require.True(prod.IsZero(), "boundary squared must vanish")
}

func TestBoundaryMatrix_MixedComplexDoubleSquaresToZero(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	for _, s := range [][]int{{1, 2, 3}, {2, 4}, {3, 4}, {5, 4}, {6}} {
		_, err := c.Add(simplex.MustNew(s...), true)
		require.NoError(err)
	}

	for d := 2; d <= c.Dim(); d++ {
		lo, err := scx.BoundaryMatrix(c, d-1)
		require.NoError(err)
		hi, err := scx.BoundaryMatrix(c, d)
		require.NoError(err)
		prod, err := lo.Mul(hi)
		require.NoError(err)
		require.True(prod.IsZero())
	}
}
