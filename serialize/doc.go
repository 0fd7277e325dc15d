// Package serialize implements the two on-disk text formats this module
// exchanges with the outside world: a line-oriented filtration format
// (comma-separated vertex labels followed by the filtration value) and
// a boundary-matrix dump format (one line per column, tokens
// "k i0 i1 ... ik").
package serialize
