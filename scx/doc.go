// Package scx implements Complex, a simplicial complex closed under the
// face relation: cells are partitioned by dimension, each cell carries a
// stable 1-based index within its dimension assigned on insertion, and
// insertion can optionally close a cell's face set recursively before
// adding the cell itself.
//
// Complex also owns the boundary operator: Boundary maps a cell to the
// alternating sum of its faces as a simplex.Chain, and BoundaryMatrix
// assembles the per-dimension boundary matrices consumed by the homology
// engine.
//
// Complex is intentionally not safe for concurrent use: this library's
// entire hard core is single-threaded and synchronous, so Complex
// carries no locks at all.
package scx
