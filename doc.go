// Package simplicial computes the homology of finite simplicial
// complexes built from point-cloud data.
//
// 🚀 What is simplicial?
//
//	A pure-Go computational-homology kernel that brings together:
//		• Simplex/Chain: the combinatorial atom and its formal ℤ-linear combinations
//		• Complex: cell storage by dimension with face-closure insertion
//		• Vietoris–Rips / witness constructors: build a complex from a distance matrix and scale
//		• Filtration: a monotone (value, dimension) ordering over a complex's cells
//		• Homology: Betti numbers, torsion coefficients and generator chains via Smith Normal Form
//
// ✨ Why choose simplicial?
//
//   - Beginner-friendly – minimal API, explicit errors, no hidden state
//   - Exact – integer Smith Normal Form, no floating-point homology
//   - Pure Go – no cgo, no hidden deps beyond testify in tests
//   - Single-threaded by design – the algorithmic bottleneck is SNF, not concurrency
//
// Under the hood, everything is organized under leaf-first subpackages:
//
//	simplex/    — Simplex value type, Chain over ℤ
//	intmat/     — dense int64 matrix backing boundary matrices and SNF
//	scx/        — Complex: cell storage, face-closure Add, boundary operator
//	distance/   — PairwiseFunc contract + bundled Euclidean implementation
//	vr/         — Vietoris–Rips and witness complex construction
//	filtration/ — monotone cell ordering, Push, divisions-based iteration
//	serialize/  — the two on-disk text formats named in the external interface
//	snf/        — pluggable Smith Normal Form solver
//	homology/   — Betti numbers, torsion, Euler characteristic, generators
//	fixtures/   — deterministic point-cloud/complex generators used by tests
//
// Quick example: the boundary of a filled triangle {1,2,3} is the
// alternating sum of its edges, {2,3} - {1,3} + {1,2}, and the filled
// triangle alone has Betti numbers [1, 0, 0] — one connected component,
// no independent 1-cycle, no 2-cycle.
//
// Persistent homology (birth/death pairing across a filtration) is not
// part of this kernel. The combined boundary matrix a persistence
// algorithm would consume is produced by filtration.CombinedBoundaryMatrix,
// but pairing it is left to a future module.
package simplicial
