package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/simplex"
)

func TestNew_CanonicalOrder(t *testing.T) {
	require := require.New(t)

	s, err := simplex.New(3, 1, 2)
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, s.Vertices(), "New must sort vertices ascending")
	require.Equal(2, s.Dim())
}

func TestNew_RejectsEmpty(t *testing.T) {
	require := require.New(t)

	_, err := simplex.New()
	require.ErrorIs(err, simplex.ErrEmptySimplex)
}

func TestNew_RejectsDuplicate(t *testing.T) {
	require := require.New(t)

	_, err := simplex.New(1, 2, 2)
	require.ErrorIs(err, simplex.ErrDuplicateVertex)
}

func TestFaces_OrderAndCount(t *testing.T) {
	require := require.New(t)

	s := simplex.MustNew(1, 2, 3)
	faces := s.Faces()
	require.Len(faces, 3)

	// "remove index 0 first": faces[i] omits vertices[i].
	require.Equal([]int{2, 3}, faces[0].Vertices())
	require.Equal([]int{1, 3}, faces[1].Vertices())
	require.Equal([]int{1, 2}, faces[2].Vertices())
	for _, f := range faces {
		require.Equal(1, f.Dim())
	}
}

func TestFaces_ZeroSimplexHasNone(t *testing.T) {
	require := require.New(t)

	s := simplex.MustNew(7)
	require.Nil(s.Faces())
	require.Equal(0, s.Dim())
}

func TestHasFace(t *testing.T) {
	require := require.New(t)

	tri := simplex.MustNew(1, 2, 3)
	require.True(tri.HasFace(simplex.MustNew(1, 2)))
	require.False(tri.HasFace(simplex.MustNew(1, 4)))
}

func TestEqualAndLess(t *testing.T) {
	require := require.New(t)

	a := simplex.MustNew(1, 2)
	b := simplex.MustNew(2, 1)
	require.True(a.Equal(b), "vertex order at construction must not affect equality")

	lower := simplex.MustNew(1)
	higher := simplex.MustNew(1, 2)
	require.True(lower.Less(higher), "lower dimension sorts first")

	left := simplex.MustNew(1, 2)
	right := simplex.MustNew(1, 3)
	require.True(left.Less(right), "same dimension compares lexicographically")
}

func TestKeyIsStableAcrossInputOrder(t *testing.T) {
	require := require.New(t)

	a := simplex.MustNew(3, 1, 2)
	b := simplex.MustNew(1, 2, 3)
	require.Equal(a.Key(), b.Key())
}
