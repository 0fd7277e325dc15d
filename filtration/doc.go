// Package filtration assembles a monotone ordering of a complex's cells
// by (filtration value, dimension) and supports incrementally growing
// both the complex and the order via Push.
//
// A Filtration does not itself compute persistent homology; it only
// maintains the ordering and produces the combined boundary matrix that
// a persistence algorithm would consume downstream. That pairing
// algorithm is out of scope here.
package filtration
