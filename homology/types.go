package homology

import "github.com/katalvlaran/simplicial/simplex"

// Generator is one explicit generator of a homology group: a representative
// cycle and its torsion order (0 for a free generator, n > 1 if the
// generator's class has order n in the group).
type Generator struct {
	Chain        simplex.Chain
	TorsionOrder int64
}

// Group is the homology group H_k of one dimension.
type Group struct {
	Dim        int
	Betti      int
	Torsion    []int64 // invariant factors > 1 of ∂_{k+1}, ascending
	Generators []Generator
}

// Result is the full homology computation of a complex, one Group per
// dimension present (index i holds H_i).
type Result struct {
	Groups []Group
}
