// Package vr builds a simplicial complex approximating the topology of a
// finite point cloud at a fixed scale ε: the Vietoris–Rips complex
// (Build) and its sparser witness-complex variant (Witness), each
// available via an inductive or incremental nerve-expansion algorithm.
//
// Build and Witness are the only constructors in this package — Čech
// complex construction (which depends on a smallest-enclosing-ball
// subroutine with known unreliable edge cases) is out of scope here.
package vr
