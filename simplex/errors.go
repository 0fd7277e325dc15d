package simplex

import "errors"

// Sentinel errors for the simplex package. Callers match with errors.Is;
// functions wrap these with fmt.Errorf("simplex.Fn: ...: %w", ErrX) rather
// than returning them bare, so context survives without losing identity.
var (
	// ErrEmptySimplex indicates a simplex was constructed with zero vertices.
	ErrEmptySimplex = errors.New("simplex: at least one vertex is required")

	// ErrDuplicateVertex indicates two or more equal vertex labels were
	// passed to New. A simplex's vertices must be pairwise distinct.
	ErrDuplicateVertex = errors.New("simplex: duplicate vertex label")

	// ErrDimensionMismatch indicates a Chain operation combined chains
	// (or a chain and a term) whose simplices do not share a dimension.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")
)
