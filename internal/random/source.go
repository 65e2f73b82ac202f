package random

import (
	"math/rand/v2"
	"sync"
)

// pcgStream is the fixed PCG stream selector; the seed alone determines the
// sequence.
const pcgStream = 0x9e3779b97f4a7c15

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, pcgStream)
}

// Locked wraps a source with a mutex so it can be shared across goroutines.
type Locked struct {
	mu  sync.Mutex
	src rand.Source
}

// NewLocked returns a Locked wrapping src.
func NewLocked(src rand.Source) *Locked {
	return &Locked{src: src}
}

// Uint64 returns the next draw from the wrapped source.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}
