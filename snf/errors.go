package snf

import "errors"

// ErrNonTermination indicates a solver signaled it could not reduce a
// matrix to diagonal form within its own bounds.
var ErrNonTermination = errors.New("snf: solver failed to terminate")

// ErrOverflow indicates an intermediate entry during reduction exceeded
// the safe int64 magnitude bound this solver enforces.
var ErrOverflow = errors.New("snf: intermediate entry overflowed int64 bound")
