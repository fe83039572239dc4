package reduce

import (
	"runtime"
	"sync"
)

// DefaultChunkSize is the number of bytes each parallel sub-sum covers.
const DefaultChunkSize = 2048

// Sum computes the sum of buf's bytes, widening each byte to uint64.
// Chunks of DefaultChunkSize bytes are summed concurrently across up to
// GOMAXPROCS goroutines.
func Sum(buf []byte) uint64 {
	return SumChunked(buf, DefaultChunkSize)
}

// SumChunked is Sum with an explicit chunk size. A non-positive chunkSize
// falls back to DefaultChunkSize. The result is identical for every chunk
// size.
func SumChunked(buf []byte, chunkSize int) uint64 {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if len(buf) <= chunkSize {
		return sumBytes(buf)
	}

	numChunks := (len(buf) + chunkSize - 1) / chunkSize
	workers := runtime.GOMAXPROCS(0)
	if workers > numChunks {
		workers = numChunks
	}

	partials := make([]uint64, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local uint64
			// Workers stride over chunks so no chunk is visited twice.
			for c := w; c < numChunks; c += workers {
				start := c * chunkSize
				end := min(start+chunkSize, len(buf))
				local += sumBytes(buf[start:end])
			}
			partials[w] = local
		}()
	}
	wg.Wait()

	var total uint64
	for _, p := range partials {
		total += p
	}
	return total
}

func sumBytes(b []byte) uint64 {
	var s uint64
	for _, v := range b {
		s += uint64(v)
	}
	return s
}
