package vr

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/simplicial/scx"
)

// Witness constructs the witness complex of landmarks with respect to
// the witness point cloud points, at scale eps with landmark-relaxation
// parameter nu in {0, 1, 2}.
//
// For each witness point i, m_i is the distance from i to its nu-th
// nearest landmark (0 when nu == 0). An edge (a, b) between landmarks
// is admitted whenever some witness i satisfies
// max(D[a,i], D[b,i]) <= eps + m_i. Higher cells are filled in exactly
// as in Build, via the selected nerve-expansion algorithm.
func Witness(landmarks, points [][]float64, eps float64, nu int, opts ...Option) (*scx.Complex, *Weights, error) {
	if len(landmarks) == 0 || len(points) == 0 {
		return nil, nil, ErrEmptyPoints
	}
	if eps <= 0 {
		return nil, nil, ErrInvalidScale
	}
	if nu < 0 || nu > 2 {
		return nil, nil, ErrInvalidNu
	}

	o := gatherOptions(opts...)
	if o.maxDim <= 0 {
		return nil, nil, ErrInvalidMaxDim
	}

	dLW, err := crossDistance(landmarks, points)
	if err != nil {
		return nil, nil, fmt.Errorf("vr.Witness: %w", err)
	}

	m := landmarkSlack(dLW, nu)

	nLandmarks := len(landmarks)
	admits := func(a, b int) bool {
		for i := range points {
			mx := dLW[a][i]
			if dLW[b][i] > mx {
				mx = dLW[b][i]
			}
			if mx <= eps+m[i] {
				return true
			}
		}

		return false
	}

	sk, err := buildSkeleton(nLandmarks, admits)
	if err != nil {
		return nil, nil, fmt.Errorf("vr.Witness: %w", err)
	}

	kMax := o.maxDim
	if deg := sk.maxDegree(); deg < kMax {
		kMax = deg
	}
	if kMax >= 1 {
		if err := sk.expand(o.expansion, kMax); err != nil {
			return nil, nil, fmt.Errorf("vr.Witness: %w", err)
		}
	}

	var w *Weights
	if o.weighted {
		w = weighWitness(sk.complex, dLW, m)
	}

	return sk.complex, w, nil
}

// crossDistance computes the Euclidean distance from every landmark to
// every witness point. It does not reuse distance.Euclidean because
// that function requires a single symmetric point set; landmarks and
// points are two distinct, possibly differently-sized sets.
func crossDistance(landmarks, points [][]float64) ([][]float64, error) {
	if len(landmarks) == 0 || len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	dim := len(landmarks[0])
	for _, p := range landmarks {
		if len(p) != dim {
			return nil, ErrAsymmetricDistance
		}
	}
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrAsymmetricDistance
		}
	}

	out := make([][]float64, len(landmarks))
	for a, la := range landmarks {
		row := make([]float64, len(points))
		for i, pt := range points {
			var sum float64
			for k := 0; k < dim; k++ {
				diff := la[k] - pt[k]
				sum += diff * diff
			}
			row[i] = math.Sqrt(sum)
		}
		out[a] = row
	}

	return out, nil
}

// landmarkSlack returns, for every witness point i, the distance to its
// nu-th nearest landmark (0 when nu == 0).
func landmarkSlack(dLW [][]float64, nu int) []float64 {
	numWitness := 0
	if len(dLW) > 0 {
		numWitness = len(dLW[0])
	}
	m := make([]float64, numWitness)
	if nu == 0 {
		return m
	}

	col := make([]float64, len(dLW))
	for i := 0; i < numWitness; i++ {
		for a := range dLW {
			col[a] = dLW[a][i]
		}
		sorted := append([]float64{}, col...)
		sort.Float64s(sorted)
		idx := nu - 1
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		m[i] = sorted[idx]
	}

	return m
}

// weighWitness assigns each edge the smallest slack-adjusted max-distance
// over all witnesses that admit it, and every higher cell the max over
// its (d-1)-face weights, mirroring weighVR.
func weighWitness(c *scx.Complex, dLW [][]float64, m []float64) *Weights {
	w := newWeights()
	for _, v := range c.Cells(0) {
		w.set(v, 0)
	}
	for _, e := range c.Cells(1) {
		verts := e.Vertices()
		a, b := verts[0], verts[1]
		best := -1.0
		for i := range m {
			mx := dLW[a][i]
			if dLW[b][i] > mx {
				mx = dLW[b][i]
			}
			val := mx - m[i]
			if val < 0 {
				val = 0
			}
			if best < 0 || val < best {
				best = val
			}
		}
		if best < 0 {
			best = 0
		}
		w.set(e, best)
	}
	for dim := 2; dim <= c.Dim(); dim++ {
		for _, sigma := range c.Cells(dim) {
			best := 0.0
			for i, face := range sigma.Faces() {
				v, _ := w.Get(face)
				if i == 0 || v > best {
					best = v
				}
			}
			w.set(sigma, best)
		}
	}

	return w
}
