package vr

import "errors"

var (
	// ErrInvalidScale indicates ε was <= 0.
	ErrInvalidScale = errors.New("vr: scale epsilon must be > 0")

	// ErrInvalidMaxDim indicates max_out_dim was <= 0.
	ErrInvalidMaxDim = errors.New("vr: max output dimension must be > 0")

	// ErrInvalidNu indicates a witness-complex ν argument outside {0,1,2}.
	ErrInvalidNu = errors.New("vr: nu must be 0, 1, or 2")

	// ErrUnknownExpansion indicates an Expansion value other than
	// Inductive or Incremental.
	ErrUnknownExpansion = errors.New("vr: unknown expansion method")

	// ErrEmptyPoints indicates zero points were supplied.
	ErrEmptyPoints = errors.New("vr: at least one point is required")

	// ErrAsymmetricDistance indicates a distance matrix failed the
	// symmetric, zero-diagonal contract required of PairwiseFunc output.
	ErrAsymmetricDistance = errors.New("vr: distance matrix must be symmetric with zero diagonal")
)
