package simplex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Simplex is an immutable d-simplex: an ordered sequence of d+1 distinct
// vertex labels, stored in canonical (ascending) order. Two simplices are
// equal, compared, and hashed by their sorted vertex tuple.
//
// Complexity: construction is O(n log n) for n vertices; all accessors
// below are O(1) or O(n) copies, never mutating the receiver.
type Simplex struct {
	vertices []int // sorted ascending, length == dim+1, pairwise distinct
}

// New constructs a simplex from the given vertex labels.
//
// Stage 1 (Validate): reject an empty vertex list (ErrEmptySimplex) and
// any duplicate label (ErrDuplicateVertex).
// Stage 2 (Execute): copy and sort the labels into canonical order.
//
// Complexity: O(n log n) for n = len(vertices).
func New(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return Simplex{}, ErrEmptySimplex
	}

	sorted := make([]int, len(vertices))
	copy(sorted, vertices)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return Simplex{}, fmt.Errorf("simplex.New: vertex %d repeated: %w", sorted[i], ErrDuplicateVertex)
		}
	}

	return Simplex{vertices: sorted}, nil
}

// MustNew is New, but panics on error. Intended for fixtures and tests
// that construct simplices from literal, known-good vertex sets.
func MustNew(vertices ...int) Simplex {
	s, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dim returns the dimension of s: len(vertices) - 1.
func (s Simplex) Dim() int {
	return len(s.vertices) - 1
}

// Vertices returns the sorted vertex tuple. The returned slice is a copy;
// mutating it does not affect s.
func (s Simplex) Vertices() []int {
	out := make([]int, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Faces returns the d+1 faces of s (dimension d-1), obtained by removing
// each vertex in turn. The order is "remove index 0 first": faces()[0]
// omits vertices[0], faces()[1] omits vertices[1], and so on. This order
// is load-bearing — scx.Boundary assigns alternating signs (-1)^i to
// faces()[i].
//
// A 0-simplex (a single vertex) has no faces and returns nil.
func (s Simplex) Faces() []Simplex {
	n := len(s.vertices)
	if n <= 1 {
		return nil
	}

	faces := make([]Simplex, n)
	for i := 0; i < n; i++ {
		rest := make([]int, 0, n-1)
		rest = append(rest, s.vertices[:i]...)
		rest = append(rest, s.vertices[i+1:]...)
		// rest is already sorted (subsequence of a sorted slice).
		faces[i] = Simplex{vertices: rest}
	}

	return faces
}

// HasFace reports whether τ is one of s's faces.
func (s Simplex) HasFace(tau Simplex) bool {
	for _, f := range s.Faces() {
		if f.Equal(tau) {
			return true
		}
	}

	return false
}

// Equal reports whether s and other have the same vertex tuple.
func (s Simplex) Equal(other Simplex) bool {
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	for i := range s.vertices {
		if s.vertices[i] != other.vertices[i] {
			return false
		}
	}

	return true
}

// Less defines a total order over simplices: first by dimension, then
// lexicographically by vertex tuple. Used to give Chain terms and
// Filtration entries a deterministic, reproducible sort order.
func (s Simplex) Less(other Simplex) bool {
	if s.Dim() != other.Dim() {
		return s.Dim() < other.Dim()
	}
	for i := range s.vertices {
		if s.vertices[i] != other.vertices[i] {
			return s.vertices[i] < other.vertices[i]
		}
	}

	return false
}

// Key returns a comparable string encoding of s's vertex tuple, suitable
// for use as a map key (mirrors core.Vertex.ID's role as a map key in the
// teacher graph library, since Go maps cannot key on slices directly).
func (s Simplex) Key() string {
	parts := make([]string, len(s.vertices))
	for i, v := range s.vertices {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// String renders s as "<v0,v1,...,vk>" for diagnostics and test failure
// messages.
func (s Simplex) String() string {
	parts := make([]string, len(s.vertices))
	for i, v := range s.vertices {
		parts[i] = strconv.Itoa(v)
	}

	return "<" + strings.Join(parts, ",") + ">"
}
