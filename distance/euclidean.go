package distance

import (
	"fmt"
	"math"
)

// PairwiseFunc computes the symmetric, zero-diagonal n×n distance matrix
// for a set of n points. Row-major: D[i][j] is the distance between
// points[i] and points[j]. Implementations are opaque to vr.Build —
// only the contract (symmetric, D[i][i] == 0, D[i][j] >= 0)
// is relied on.
type PairwiseFunc func(points [][]float64) ([][]float64, error)

// Euclidean is the bundled PairwiseFunc: ordinary L2 distance. All
// points must share the same dimension, or an error is returned.
func Euclidean(points [][]float64) ([][]float64, error) {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	if n == 0 {
		return d, nil
	}
	dim := len(points[0])
	for i := 1; i < n; i++ {
		if len(points[i]) != dim {
			return nil, fmt.Errorf("distance.Euclidean: point %d has dimension %d, want %d", i, len(points[i]), dim)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < dim; k++ {
				delta := points[i][k] - points[j][k]
				sum += delta * delta
			}
			dist := math.Sqrt(sum)
			d[i][j] = dist
			d[j][i] = dist
		}
	}

	return d, nil
}
