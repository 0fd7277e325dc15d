package filtration

import "fmt"

// CombinedBoundaryMatrix returns one sparse column per cell in T order:
// column j holds the 1-based T-positions of the faces of T's j-th cell.
// If reduced is true, an empty "augmentation" column is prepended,
// mirroring the virtual (-1)-dimension row used by persistent-homology
// reduction algorithms.
func (f *Filtration) CombinedBoundaryMatrix(reduced bool) ([][]int, error) {
	if len(f.t) == 0 {
		return nil, ErrEmptyFiltration
	}

	pos := make(map[string]int, len(f.t))
	for p, e := range f.t {
		cell, err := f.complex.CellAt(e.index, e.dim)
		if err != nil {
			return nil, fmt.Errorf("filtration.CombinedBoundaryMatrix: %w", err)
		}
		pos[cell.Key()] = p + 1
	}

	columns := make([][]int, 0, len(f.t)+1)
	if reduced {
		columns = append(columns, nil)
	}

	for _, e := range f.t {
		cell, err := f.complex.CellAt(e.index, e.dim)
		if err != nil {
			return nil, fmt.Errorf("filtration.CombinedBoundaryMatrix: %w", err)
		}

		var col []int
		for _, face := range cell.Faces() {
			p, ok := pos[face.Key()]
			if !ok {
				return nil, fmt.Errorf("filtration.CombinedBoundaryMatrix: face %s of %s not in T: %w", face, cell, ErrFaceNotOrdered)
			}
			col = append(col, p)
		}
		columns = append(columns, col)
	}

	return columns, nil
}
