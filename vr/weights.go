package vr

import "github.com/katalvlaran/simplicial/simplex"

// Weights holds the filtration value of every cell in a complex,
// indexed by dimension and cell key. For Build, a simplex enters at the
// scale equal to the longest pairwise distance among its vertices; for
// Witness, edges carry the slack-adjusted value from weighWitness. In
// both, vertices are 0 and a higher cell takes the max of its faces.
type Weights struct {
	byDim []map[string]float64
}

func newWeights() *Weights {
	return &Weights{}
}

func (w *Weights) ensureDim(d int) map[string]float64 {
	for len(w.byDim) <= d {
		w.byDim = append(w.byDim, make(map[string]float64))
	}

	return w.byDim[d]
}

func (w *Weights) set(s simplex.Simplex, v float64) {
	w.ensureDim(s.Dim())[s.Key()] = v
}

// Get returns the weight of s and whether one was recorded.
func (w *Weights) Get(s simplex.Simplex) (float64, bool) {
	d := s.Dim()
	if d < 0 || d >= len(w.byDim) {
		return 0, false
	}
	v, ok := w.byDim[d][s.Key()]

	return v, ok
}
