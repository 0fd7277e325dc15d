package homology_test

import (
	"math"

	"github.com/katalvlaran/simplicial/scx"
)

var (
	sqrt2 = math.Sqrt(2)
	sqrt3 = math.Sqrt(3)
)

func newEmptyComplex() *scx.Complex {
	return scx.New()
}
