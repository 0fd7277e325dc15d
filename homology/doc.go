// Package homology computes the homology of a simplicial complex: Betti
// numbers, torsion coefficients, the Euler characteristic, and (optionally)
// explicit generator chains, all derived from the Smith Normal Form of each
// dimension's boundary matrix.
//
// Compute factorizes ∂_d for every dimension present in the complex via a
// snf.Solver — by default snf.Default(), overridable per call with
// WithSolver. Betti_k and the torsion coefficients of H_k follow directly
// from the ranks and invariant factors of ∂_k and ∂_{k+1}; see compute.go
// for the exact formulas. Generator chains (WithGenerators) additionally
// re-run SNF once more per dimension on the boundary map restricted to
// ker(∂_k)'s own coordinates, so the torsion/free split lines up with an
// actual basis of ker(∂_k) rather than an arbitrary one.
package homology
