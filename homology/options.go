package homology

import "github.com/katalvlaran/simplicial/snf"

// Options collects Compute's configuration, built from a sequence of
// Option values.
type Options struct {
	solver         snf.Solver
	withGenerators bool
}

// Option configures a Compute call.
type Option func(*Options)

// WithSolver overrides the Smith Normal Form solver used for this call,
// taking precedence over snf.Default().
func WithSolver(fn snf.Solver) Option {
	return func(o *Options) { o.solver = fn }
}

// WithGenerators requests explicit generator chains for every homology
// group in the result. Without it, Result's Groups carry nil Generators.
func WithGenerators() Option {
	return func(o *Options) { o.withGenerators = true }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, set := range opts {
		set(&o)
	}

	return o
}

func (o Options) resolveSolver() snf.Solver {
	if o.solver != nil {
		return o.solver
	}

	return snf.Default()
}
