// Package matrix provides the byte-matrix type and its pseudo-random source.
//
// A Source is owned and called by exactly one goroutine; it is seedable so a
// fixed seed reproduces the same sequence of matrices call for call.
package matrix
