package intmat

import "errors"

var (
	// ErrInvalidDimensions indicates a requested row or column count was <= 0.
	ErrInvalidDimensions = errors.New("intmat: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index fell outside the
	// matrix's bounds. Public accessors return this rather than panic.
	ErrOutOfRange = errors.New("intmat: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// (e.g. Mul where a.Cols() != b.Rows()).
	ErrDimensionMismatch = errors.New("intmat: dimension mismatch")
)
