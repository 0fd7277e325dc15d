package simplex

import "fmt"

// dimUnset marks a Chain that has not yet seen a term and therefore has
// no fixed dimension. The first term added to such a chain fixes its
// dimension for the remainder of its life.
const dimUnset = -1

// Term is one (cell, coefficient) pair of a Chain. Coefficient is always
// nonzero in a Simplify-d Chain; unsimplified chains may carry zero or
// duplicate-cell terms until Simplify is called.
type Term struct {
	Cell  Simplex
	Coeff int64
}

// Chain is a finite ℤ-linear combination of simplices of one fixed
// dimension. It is represented logically as {(cell, coefficient)} and
// physically as a slice of Term — sorted and duplicate-free once
// Simplify has run, append-only (and possibly unsorted, with duplicate
// cells) beforehand. A sorted slice beats a map here: chains are small,
// and Simplify needs a deterministic output order regardless of
// insertion order.
type Chain struct {
	dim   int
	terms []Term
}

// NewChain returns the zero chain (no terms, no fixed dimension yet).
func NewChain() Chain {
	return Chain{dim: dimUnset}
}

// NewChainFromTerms builds a chain directly from the given terms. All
// terms must share a dimension, or ErrDimensionMismatch is returned.
// The result is not simplified; call Simplify explicitly if needed.
func NewChainFromTerms(terms ...Term) (Chain, error) {
	c := NewChain()
	for _, t := range terms {
		var err error
		c, err = c.With(t.Coeff, t.Cell)
		if err != nil {
			return Chain{}, err
		}
	}

	return c, nil
}

// Dim returns the chain's dimension, or dimUnset (-1) for the zero chain
// with no terms yet.
func (c Chain) Dim() int {
	return c.dim
}

// IsZero reports whether c has no terms (the additive identity).
func (c Chain) IsZero() bool {
	return len(c.terms) == 0
}

// Terms returns a copy of c's terms in their current (possibly
// unsimplified) order.
func (c Chain) Terms() []Term {
	out := make([]Term, len(c.terms))
	copy(out, c.terms)

	return out
}

// With returns a new chain with (coeff, cell) appended as an additional
// term. If c already has terms and cell's dimension differs from c.Dim(),
// returns ErrDimensionMismatch.
func (c Chain) With(coeff int64, cell Simplex) (Chain, error) {
	if c.dim != dimUnset && cell.Dim() != c.dim {
		return Chain{}, fmt.Errorf("simplex.Chain.With: term dim %d != chain dim %d: %w", cell.Dim(), c.dim, ErrDimensionMismatch)
	}

	terms := make([]Term, len(c.terms), len(c.terms)+1)
	copy(terms, c.terms)
	terms = append(terms, Term{Cell: cell, Coeff: coeff})

	dim := c.dim
	if dim == dimUnset {
		dim = cell.Dim()
	}

	return Chain{dim: dim, terms: terms}, nil
}

// Add returns c + other. The zero chain (IsZero) is the additive
// identity and is compatible with any dimension; two non-zero chains of
// differing dimension return ErrDimensionMismatch.
func (c Chain) Add(other Chain) (Chain, error) {
	if c.IsZero() {
		return other, nil
	}
	if other.IsZero() {
		return c, nil
	}
	if c.dim != other.dim {
		return Chain{}, fmt.Errorf("simplex.Chain.Add: dim %d != dim %d: %w", c.dim, other.dim, ErrDimensionMismatch)
	}

	terms := make([]Term, 0, len(c.terms)+len(other.terms))
	terms = append(terms, c.terms...)
	terms = append(terms, other.terms...)

	return Chain{dim: c.dim, terms: terms}, nil
}

// Scale returns alpha * c. Scaling the zero chain by anything yields the
// zero chain.
func (c Chain) Scale(alpha int64) Chain {
	if alpha == 0 || c.IsZero() {
		return Chain{dim: dimUnset}
	}

	terms := make([]Term, len(c.terms))
	for i, t := range c.terms {
		terms[i] = Term{Cell: t.Cell, Coeff: t.Coeff * alpha}
	}

	return Chain{dim: c.dim, terms: terms}
}

// Negate returns -c.
func (c Chain) Negate() Chain {
	return c.Scale(-1)
}

// Simplify returns the canonical form of c: terms with equal cells are
// merged by summing coefficients, zero-coefficient terms are dropped,
// and the remaining terms are sorted by Simplex.Less. Simplify is
// idempotent: Simplify(Simplify(c)) equals Simplify(c).
func (c Chain) Simplify() Chain {
	if c.IsZero() {
		return c
	}

	byKey := make(map[string]*Term, len(c.terms))
	order := make([]string, 0, len(c.terms))
	for _, t := range c.terms {
		k := t.Cell.Key()
		if existing, ok := byKey[k]; ok {
			existing.Coeff += t.Coeff
		} else {
			cp := t
			byKey[k] = &cp
			order = append(order, k)
		}
	}

	out := make([]Term, 0, len(order))
	for _, k := range order {
		t := byKey[k]
		if t.Coeff != 0 {
			out = append(out, *t)
		}
	}
	sortTerms(out)

	if len(out) == 0 {
		return Chain{dim: dimUnset}
	}

	return Chain{dim: c.dim, terms: out}
}

// EqualSimplified reports whether Simplify(c) and Simplify(other) carry
// the same terms in the same order. Use this (rather than reflect.DeepEqual
// on raw chains) to compare chains for mathematical equality.
func (c Chain) EqualSimplified(other Chain) bool {
	a := c.Simplify()
	b := other.Simplify()
	if a.dim != b.dim || len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if a.terms[i].Coeff != b.terms[i].Coeff || !a.terms[i].Cell.Equal(b.terms[i].Cell) {
			return false
		}
	}

	return true
}

func sortTerms(terms []Term) {
	// Small n in practice (chain width is bounded by simplex/complex
	// size); insertion sort keeps this file dependency-free and the
	// ordering obviously stable.
	for i := 1; i < len(terms); i++ {
		j := i
		for j > 0 && terms[j].Cell.Less(terms[j-1].Cell) {
			terms[j], terms[j-1] = terms[j-1], terms[j]
			j--
		}
	}
}
