package vr

import (
	"fmt"

	"github.com/katalvlaran/simplicial/scx"
	"github.com/katalvlaran/simplicial/simplex"
)

// skeleton holds the shared state the inductive and incremental
// expansion algorithms both operate on: the complex built so far, the
// 1-skeleton adjacency, and the vertex-index order used by lower_nbrs.
type skeleton struct {
	complex *scx.Complex
	adj     [][]bool // n x n symmetric adjacency over vertex indices 0..n-1
	n       int
}

// lowerNbrs returns, in ascending order, every vertex w with w < u and
// adj[w][u]: the set of vertices w with index(w) < index(u) and
// E[w,u] = true.
func (s *skeleton) lowerNbrs(u int) []int {
	var out []int
	for w := 0; w < u; w++ {
		if s.adj[w][u] {
			out = append(out, w)
		}
	}

	return out
}

func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// maxDegree returns the largest number of edges incident to any vertex,
// computed directly from the adjacency rather than revisiting D.
func (s *skeleton) maxDegree() int {
	best := 0
	for u := 0; u < s.n; u++ {
		deg := 0
		for v := 0; v < s.n; v++ {
			if s.adj[u][v] {
				deg++
			}
		}
		if deg > best {
			best = deg
		}
	}

	return best
}

// expand runs the selected nerve-expansion algorithm up to dimension
// kMax over s.complex, which must already contain the 0- and 1-skeleton.
func (s *skeleton) expand(method Expansion, kMax int) error {
	switch method {
	case Inductive:
		return s.expandInductive(kMax)
	case Incremental:
		return s.expandIncremental(kMax)
	default:
		return fmt.Errorf("vr.expand: %q: %w", method, ErrUnknownExpansion)
	}
}

// expandInductive expands dimension-by-dimension: for each dimension d
// from 1 to kMax-1, every existing d-simplex τ is extended by every
// vertex in N(τ) = ∩_{u∈τ} lower_nbrs(u).
func (s *skeleton) expandInductive(kMax int) error {
	for d := 1; d < kMax; d++ {
		cells := s.complex.Cells(d)
		for _, tau := range cells {
			verts := tau.Vertices()
			n := s.lowerNbrs(verts[0])
			for _, u := range verts[1:] {
				n = intersectSorted(n, s.lowerNbrs(u))
			}
			for _, v := range n {
				if containsInt(verts, v) {
					continue
				}
				newVerts := append(append([]int{}, verts...), v)
				sigma, err := simplex.New(newVerts...)
				if err != nil {
					return err
				}
				if _, err := s.complex.Add(sigma, true); err != nil {
					return fmt.Errorf("vr.expandInductive: %w", err)
				}
			}
		}
	}

	return nil
}

// expandIncremental expands via a depth-first walk from each vertex that
// intersects lower-neighbor sets as it descends, stopping at dimension
// kMax (Zomorodian's "incremental VR" traversal).
func (s *skeleton) expandIncremental(kMax int) error {
	for u := 0; u < s.n; u++ {
		tau := simplex.MustNew(u)
		if err := s.addCofaces(tau, s.lowerNbrs(u), kMax); err != nil {
			return err
		}
	}

	return nil
}

func (s *skeleton) addCofaces(tau simplex.Simplex, n []int, kMax int) error {
	if _, err := s.complex.Add(tau, true); err != nil {
		return fmt.Errorf("vr.addCofaces: %w", err)
	}
	if tau.Dim() >= kMax {
		return nil
	}
	for _, v := range n {
		newVerts := append(append([]int{}, tau.Vertices()...), v)
		sigma, err := simplex.New(newVerts...)
		if err != nil {
			return err
		}
		m := intersectSorted(n, s.lowerNbrs(v))
		if err := s.addCofaces(sigma, m, kMax); err != nil {
			return err
		}
	}

	return nil
}

// buildSkeleton inserts n vertices and every 1-skeleton edge (u, v) for
// which edgeAt(u, v) holds (Build passes the 0 < D[u,v] <= ε test;
// Witness passes its own admission predicate — see witness.go),
// returning the populated skeleton.
func buildSkeleton(n int, edgeAt func(u, v int) bool) (*skeleton, error) {
	c := scx.New()
	for i := 0; i < n; i++ {
		if _, err := c.Add(simplex.MustNew(i), false); err != nil {
			return nil, fmt.Errorf("vr.buildSkeleton: %w", err)
		}
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if edgeAt(u, v) {
				adj[u][v] = true
				adj[v][u] = true
				if _, err := c.Add(simplex.MustNew(u, v), false); err != nil {
					return nil, fmt.Errorf("vr.buildSkeleton: %w", err)
				}
			}
		}
	}

	return &skeleton{complex: c, adj: adj, n: n}, nil
}
