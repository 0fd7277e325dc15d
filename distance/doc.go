// Package distance provides the one concrete PairwiseFunc this library
// ships: Euclidean. The distance-metric library is treated as an
// external collaborator the core consumes opaquely ("pairwise_distance
// (points) -> matrix") — vr.Build accepts any distance.PairwiseFunc via
// vr.WithDistanceFunc, including one the caller supplies; vr.Witness
// computes Euclidean landmark-to-witness distances itself. This package
// gives vr.Build its default and tests something concrete to pass
// without depending on a third-party metric library.
package distance
