package vr

import "github.com/katalvlaran/simplicial/distance"

// Expansion selects which nerve-expansion algorithm Build/Witness uses
// once the 1-skeleton is assembled. Both produce the same complex; they
// differ only in traversal order.
type Expansion string

const (
	// Inductive expands dimension-by-dimension: every d-simplex is
	// considered once before any (d+1)-simplex is built from it.
	Inductive Expansion = "inductive"

	// Incremental expands depth-first from each vertex, intersecting
	// lower-neighbor sets as it descends.
	Incremental Expansion = "incremental"
)

// Options configures Build and Witness. Use the With* constructors below
// rather than constructing Options directly; unexported fields keep the
// zero value meaningless outside gatherOptions.
type Options struct {
	maxDim     int
	expansion  Expansion
	weighted   bool
	distanceFn distance.PairwiseFunc
}

// Option is a functional setter over Options, applied left to right by
// gatherOptions (last writer wins).
type Option func(*Options)

// WithMaxDim caps the output complex's dimension. Values <= 0 make
// Build/Witness return ErrInvalidMaxDim.
func WithMaxDim(d int) Option {
	return func(o *Options) { o.maxDim = d }
}

// WithExpansion selects Inductive or Incremental nerve expansion.
func WithExpansion(e Expansion) Option {
	return func(o *Options) { o.expansion = e }
}

// WithWeights requests that Build/Witness also compute and return the
// VR filtration weights.
func WithWeights() Option {
	return func(o *Options) { o.weighted = true }
}

// WithDistanceFunc overrides the default distance.Euclidean pairwise
// function used by Build (Witness always computes Euclidean
// landmark-to-witness distances itself and ignores this option).
func WithDistanceFunc(fn distance.PairwiseFunc) Option {
	return func(o *Options) { o.distanceFn = fn }
}

const defaultMaxDim = 3

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxDim:     defaultMaxDim,
		expansion:  Inductive,
		weighted:   false,
		distanceFn: distance.Euclidean,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
