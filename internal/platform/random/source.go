package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source is a pseudo-random integer source that is safe for concurrent use.
// A single Source is shared by every request, so calls are serialised.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source. A zero seed draws a fresh seed from crypto/rand;
// any other seed yields a reproducible sequence.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func cryptoSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to the
		// runtime-seeded global generator anyway.
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}
