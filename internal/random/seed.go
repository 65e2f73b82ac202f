// Package random provides seed generation and seeded sources for
// reproducible simulations.
//
// Seeds come from crypto/rand so that unseeded runs are unpredictable, while
// sources built from a seed are deterministic PCG generators so that any run
// can be replayed from the seed it reports.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// SeedOrRandom returns seed unchanged when it is non-zero. A zero seed is
// replaced with a fresh one from NewSeed and, when verbose, written to w so
// the run can be reproduced.
func SeedOrRandom(seed uint64, verbose bool, w io.Writer) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	seed, err := NewSeed()
	if err != nil {
		return 0, err
	}
	if verbose && w != nil {
		fmt.Fprintf(w, "Using seed: %d\n", seed)
	}
	return seed, nil
}
