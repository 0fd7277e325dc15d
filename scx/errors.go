package scx

import "errors"

var (
	// ErrFaceMissing indicates Add was called with recursive=false and at
	// least one face of the given cell is not yet present in the complex.
	ErrFaceMissing = errors.New("scx: face missing (call Add with recursive=true)")

	// ErrCellNotFound indicates CellAt was given an index outside its
	// dimension, or BoundaryMatrix met a face that is not in the complex
	// (IndexOf itself reports absence with a sentinel index, not an error).
	ErrCellNotFound = errors.New("scx: cell not found")

	// ErrInvalidDimension indicates a dimension argument was negative or
	// exceeded the complex's current Dim().
	ErrInvalidDimension = errors.New("scx: invalid dimension")
)
