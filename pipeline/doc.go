// Package pipeline runs the bounded-channel matrix reduction pipeline.
//
// One producer goroutine generates fixed-size byte matrices from a seedable
// source and sends them on a channel of capacity consumer_count*2; the
// bounded buffer applies backpressure, suspending the producer whenever
// consumers fall behind. A fixed pool of consumer goroutines competes for
// matrices on the shared channel, reduces each to its byte sum, and
// accumulates results locally. The producer closes the channel after the
// last send, so every consumer terminates once the buffer drains.
//
// Ordering: each worker's results follow its own receipt order; the
// concatenated result carries no global ordering guarantee. The result
// count always equals the configured iteration count, and under a fixed
// seed the multiset of sums matches single-threaded processing of the same
// matrices.
//
// # Usage
//
//	results, err := pipeline.Run(ctx, pipeline.Config{
//	    MatrixSize:    8,
//	    Iterations:    5,
//	    ConsumerCount: 2,
//	    Seed:          pipeline.Seed(42),
//	})
package pipeline
