package vr

import (
	"fmt"

	"github.com/katalvlaran/simplicial/scx"
)

// Build constructs the Vietoris–Rips complex of points at scale eps: an
// edge (u, v) is admitted whenever 0 < D[u,v] <= eps, and higher cells
// are filled in by the nerve-expansion algorithm selected via
// WithExpansion.
//
// The returned Weights is nil unless WithWeights is supplied.
func Build(points [][]float64, eps float64, opts ...Option) (*scx.Complex, *Weights, error) {
	if len(points) == 0 {
		return nil, nil, ErrEmptyPoints
	}
	if eps <= 0 {
		return nil, nil, ErrInvalidScale
	}

	o := gatherOptions(opts...)
	if o.maxDim <= 0 {
		return nil, nil, ErrInvalidMaxDim
	}

	d, err := o.distanceFn(points)
	if err != nil {
		return nil, nil, fmt.Errorf("vr.Build: %w", err)
	}
	if err := checkDistanceMatrix(d); err != nil {
		return nil, nil, fmt.Errorf("vr.Build: %w", err)
	}

	n := len(points)
	sk, err := buildSkeleton(n, func(u, v int) bool {
		return d[u][v] > 0 && d[u][v] <= eps
	})
	if err != nil {
		return nil, nil, fmt.Errorf("vr.Build: %w", err)
	}

	kMax := o.maxDim
	if deg := sk.maxDegree(); deg < kMax {
		kMax = deg
	}
	if kMax >= 1 {
		if err := sk.expand(o.expansion, kMax); err != nil {
			return nil, nil, fmt.Errorf("vr.Build: %w", err)
		}
	}

	var w *Weights
	if o.weighted {
		w = weighVR(sk.complex, d)
	}

	return sk.complex, w, nil
}

// weighVR assigns each cell its VR filtration value: 0 for vertices,
// the pairwise distance for edges, and the max over (d-1)-face weights
// for every higher cell.
func weighVR(c *scx.Complex, d [][]float64) *Weights {
	w := newWeights()
	for _, v := range c.Cells(0) {
		w.set(v, 0)
	}
	for _, e := range c.Cells(1) {
		verts := e.Vertices()
		w.set(e, d[verts[0]][verts[1]])
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
