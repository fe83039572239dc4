package matrix

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	randv2 "math/rand/v2"

	"github.com/kbukum/matrixflow/errors"
)

// Matrix is an owned, fixed-length byte buffer holding a size×size matrix in
// row-major order. Ownership transfers through the pipeline's channel; a
// Matrix is never shared between goroutines.
type Matrix []byte

// Source produces fixed-length byte matrices on request.
// A Source is not safe for concurrent use; the producer owns it.
type Source interface {
	// Next returns the next matrix. Each call advances generator state.
	Next() Matrix
	// Len returns the byte length of matrices produced by this source.
	Len() int
}

// chachaSource generates matrices from a ChaCha8 stream.
type chachaSource struct {
	rng *randv2.ChaCha8
	len int
}

// NewSource creates a Source producing size×size matrices. A nil seed draws
// one from the operating system; a fixed seed makes the matrix sequence
// reproducible. Returns INVALID_CONFIG if size is not positive or size
// squared overflows int.
func NewSource(size int, seed *uint64) (Source, error) {
	if size <= 0 {
		return nil, errors.InvalidConfig("matrix_size", "matrix_size must be positive")
	}
	if size > math.MaxInt/size {
		return nil, errors.InvalidConfig("matrix_size", "matrix_size squared overflows int")
	}

	var key [32]byte
	if seed != nil {
		expandSeed(*seed, &key)
	} else {
		if _, err := cryptorand.Read(key[:]); err != nil {
			return nil, errors.Internal(err)
		}
	}

	return &chachaSource{rng: randv2.NewChaCha8(key), len: size * size}, nil
}

func (s *chachaSource) Next() Matrix {
	m := make(Matrix, s.len)
	s.rng.Read(m) // never fails
	return m
}

func (s *chachaSource) Len() int { return s.len }

// expandSeed stretches a 64-bit seed across the 32-byte ChaCha8 key using a
// splitmix-style golden-ratio increment.
func expandSeed(seed uint64, key *[32]byte) {
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], seed)
		seed = seed*0x9E3779B97F4A7C15 + 1
	}
}
