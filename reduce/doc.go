// Package reduce computes byte-buffer sums as a chunked parallel reduction.
//
// A buffer is split into fixed-size chunks, each chunk is summed into a
// uint64 independently, and the per-chunk partials are combined. Addition in
// uint64 space is commutative and associative with no overflow risk for any
// buffer that fits in memory, so chunk size and execution order never change
// the result.
package reduce
