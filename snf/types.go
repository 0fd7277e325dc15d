package snf

import (
	"sync/atomic"

	"github.com/katalvlaran/simplicial/intmat"
)

// Solver computes the Smith Normal Form of an integer matrix B: unimodular
// U, V with U·B·V = S diagonal, invariant-factor-ordered, plus the
// inverses Uinv, Vinv needed by homology's generator-extraction step.
type Solver func(b *intmat.Matrix) (u, s, v, uinv, vinv *intmat.Matrix, err error)

// defaultSolver holds the process-wide SNF slot, a synchronized mutable
// cell holding a function value. Guarded by atomic.Pointer rather than a
// mutex; homology.Compute resolves its solver as explicit option > this
// default > Factorize.
var defaultSolver atomic.Pointer[Solver]

// SetDefault installs fn as the process-wide default solver. Callers
// must not call SetDefault concurrently with homology.Compute; it is
// expected to run once, during initialization.
func SetDefault(fn Solver) {
	defaultSolver.Store(&fn)
}

// Default returns the currently installed process-wide solver, or
// Factorize if none has been set.
func Default() Solver {
	if p := defaultSolver.Load(); p != nil {
		return *p
	}

	return Factorize
}
