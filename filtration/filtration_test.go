package filtration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicial/filtration"
	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

// buildFourCellPushSequence replays a push sequence: Simplex(1) at
// value 1, Simplex(2) at 2, Simplex(1,2) at 3 (recursive), Simplex(1,3)
// at 4 (recursive).
func buildFourCellPushSequence(t *testing.T) *filtration.Filtration {
	t.Helper()
	require := require.New(t)

	f := filtration.New(scx.New(), nil)
	_, err := f.Push(simplex.MustNew(1), 1, false)
	require.NoError(err)
	_, err = f.Push(simplex.MustNew(2), 2, false)
	require.NoError(err)
	_, err = f.Push(simplex.MustNew(1, 2), 3, true)
	require.NoError(err)
	_, err = f.Push(simplex.MustNew(1, 3), 4, true)
	require.NoError(err)

	return f
}

func TestPush_FourCellStepSequence(t *testing.T) {
	require := require.New(t)

	f := buildFourCellPushSequence(t)
	require.Equal(5, f.Len())

	steps, err := f.Iterate(filtration.Infinite)
	require.NoError(err)
	require.Len(steps, 4)

	require.Equal(1.0, steps[0].Value)
	require.Equal([]filtration.CellRef{{Dim: 0, Index: 1}}, steps[0].Cells)

	require.Equal(2.0, steps[1].Value)
	require.Equal([]filtration.CellRef{{Dim: 0, Index: 2}}, steps[1].Cells)

	require.Equal(3.0, steps[2].Value)
	require.Equal([]filtration.CellRef{{Dim: 1, Index: 1}}, steps[2].Cells)

	require.Equal(4.0, steps[3].Value)
	require.Equal([]filtration.CellRef{{Dim: 0, Index: 3}, {Dim: 1, Index: 2}}, steps[3].Cells)
}

func TestCombinedBoundaryMatrix_NonzeroEntryCount(t *testing.T) {
	require := require.New(t)

	f := buildFourCellPushSequence(t)
	cols, err := f.CombinedBoundaryMatrix(false)
	require.NoError(err)
	require.Len(cols, 5)

	total := 0
	for _, col := range cols {
		total += len(col)
	}
	require.Equal(4, total)
}

func TestCombinedBoundaryMatrix_ReducedPrependsEmptyColumn(t *testing.T) {
	require := require.New(t)

	f := buildFourCellPushSequence(t)
	cols, err := f.CombinedBoundaryMatrix(true)
	require.NoError(err)
	require.Len(cols, 6)
	require.Empty(cols[0])
}

func TestIterate_RejectsNegativeDivisions(t *testing.T) {
	require := require.New(t)

	f := buildFourCellPushSequence(t)
	_, err := f.Iterate(-1)
	require.ErrorIs(err, filtration.ErrInvalidDivisions)
}

func TestIterate_EmptyFiltrationErrors(t *testing.T) {
	require := require.New(t)

	f := filtration.New(scx.New(), nil)
	_, err := f.Iterate(filtration.Infinite)
	require.ErrorIs(err, filtration.ErrEmptyFiltration)
}

func TestIterate_DivisionsAggregatesIntoNSteps(t *testing.T) {
	require := require.New(t)

	f := buildFourCellPushSequence(t)
	steps, err := f.Iterate(2)
	require.NoError(err)
	require.LessOrEqual(len(steps), 2)

	total := 0
	for _, s := range steps {
		total += len(s.Cells)
	}
	require.Equal(5, total)
}

func TestNew_NoWeightsUsesInsertionOrder(t *testing.T) {
	require := require.New(t)

	c := scx.New()
	_, err := c.Add(simplex.MustNew(1), false)
	require.NoError(err)
	_, err = c.Add(simplex.MustNew(2), false)
	require.NoError(err)
	_, err = c.Add(simplex.MustNew(1, 2), true)
	require.NoError(err)

	f := filtration.New(c, nil)
	steps, err := f.Iterate(filtration.Infinite)
	require.NoError(err)
	require.Len(steps, 3)
	require.Equal(1.0, steps[0].Value)
	require.Equal(2.0, steps[1].Value)
	require.Equal(3.0, steps[2].Value)
}
