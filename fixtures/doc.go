// Package fixtures builds the deterministic point clouds and complexes used
// by the fixtures and homology test suites. Each fixture
// reproduces one named shape rather than taking free parameters: a
// handful of fixed, documented point clouds and complexes with known
// homology, used to cross-check the rest of the library end to end.
package fixtures
