package filtration

import "errors"

var (
	// ErrInvalidDivisions indicates a non-positive, non-infinite division count.
	ErrInvalidDivisions = errors.New("filtration: divisions must be > 0 or Infinite")

	// ErrEmptyFiltration indicates an iteration or boundary request against
	// a filtration with no cells.
	ErrEmptyFiltration = errors.New("filtration: no cells")

	// ErrFaceNotOrdered indicates a cell's face has no position in T,
	// meaning T is not a valid face-respecting order.
	ErrFaceNotOrdered = errors.New("filtration: face has no position in T")
)
