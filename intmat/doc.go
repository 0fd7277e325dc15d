// Package intmat provides a dense row-major integer matrix, the common
// numeric substrate for boundary matrices (scx) and Smith Normal Form
// factorization (snf, homology).
//
// It uses a flat backing slice, an explicit row*cols+col index formula,
// and error-returning (never panicking) accessors, valued over int64
// rather than float64, since boundary-matrix entries and SNF arithmetic
// are always exact integers.
package intmat
