package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/fixtures"
	"github.com/katalvlaran/simplicial/homology"
	"github.com/katalvlaran/simplicial/vr"
)

func TestCompute_MixedComplexTwoComponentsOneCycle(t *testing.T) {
	require := require.New(t)

	c, err := fixtures.MixedComplex()
	require.NoError(err)

	r, err := homology.Compute(c)
	require.NoError(err)
	require.Equal([]int{2, 1, 0}, homology.Betti(r))
	require.Equal(1, homology.Euler(r))
}

func TestCompute_CubeVerticesFullComplex(t *testing.T) {
	require := require.New(t)

	pts := fixtures.CubeVertices()
	c, _, err := vr.Build(pts, sqrt3, vr.WithMaxDim(3))
	require.NoError(err)

	r, err := homology.Compute(c)
	require.NoError(err)
	require.Equal([]int{1, 0, 0, 35}, homology.Betti(r))
}

func TestCompute_TriangleBoundaryHollowCycle(t *testing.T) {
	require := require.New(t)

	c, err := fixtures.TriangleBoundary()
	require.NoError(err)

	r, err := homology.Compute(c)
	require.NoError(err)
	require.Equal([]int{1, 1}, homology.Betti(r))
	require.Equal(0, homology.Euler(r))
}

func TestCompute_AnnulusGridOneHole(t *testing.T) {
	require := require.New(t)

	pts := fixtures.Grid3x3MinusCenter()
	c, _, err := vr.Build(pts, sqrt2, vr.WithMaxDim(2))
	require.NoError(err)

	r, err := homology.Compute(c)
	require.NoError(err)
	require.Equal([]int{1, 1, 0}, homology.Betti(r))
}

func TestCompute_WithGenerators_TriangleBoundary(t *testing.T) {
	require := require.New(t)

	c, err := fixtures.TriangleBoundary()
	require.NoError(err)

	r, err := homology.Compute(c, homology.WithGenerators())
	require.NoError(err)

	h0 := r.Groups[0]
	require.Len(h0.Generators, h0.Betti)
	h1 := r.Groups[1]
	require.Len(h1.Generators, h1.Betti)
	for _, g := range h1.Generators {
		require.Equal(int64(0), g.TorsionOrder)
		require.False(g.Chain.IsZero())
	}
}

func TestCompute_EmptyComplexReturnsEmptyResult(t *testing.T) {
	require := require.New(t)

	r, err := homology.Compute(newEmptyComplex())
	require.NoError(err)
	require.Empty(r.Groups)
}
