// Package simplex defines the combinatorial atoms of the homology core:
// Simplex, an immutable ordered tuple of distinct vertex labels, and
// Chain, a finite ℤ-linear combination of same-dimension simplices.
//
// Both types are pure values — no pointers into shared state, no locks.
// The hard core above this package (scx, vr, filtration, homology) is
// single-threaded by specification; Simplex and Chain are safe to share
// across goroutines only because they are never mutated after
// construction, not because of any synchronization here.
package simplex
