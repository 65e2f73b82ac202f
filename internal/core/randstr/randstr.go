// Package randstr generates random ASCII strings from a seeded source.
//
// # Alphabets
//
// Characters are drawn from a contiguous range of byte values described by an
// offset and a size: the alphabet {Size: 26, Offset: 'a'} is "a".."z".
//
// # Determinism
//
// Each output character consumes exactly one Uint64 draw from the supplied
// source, so a string of length n advances the source by exactly n draws.
// Two sources seeded identically produce identical strings.
//
// # Uniformity
//
// Draws are reduced modulo the alphabet size without rejection sampling, so
// every character costs exactly one draw and the bias toward low offsets is
// at most Size/2^64.
package randstr

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidAlphabet indicates an alphabet that is empty or extends past 0xFF.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// Alphabet is a contiguous range of byte values [Offset, Offset+Size-1].
type Alphabet struct {
	Size   int
	Offset byte
}

// Common alphabets.
var (
	Lower     = Alphabet{Size: 26, Offset: 'a'}
	Upper     = Alphabet{Size: 26, Offset: 'A'}
	Digits    = Alphabet{Size: 10, Offset: '0'}
	Printable = Alphabet{Size: 95, Offset: ' '}
)

// Validate reports whether the alphabet is non-empty and fits in a byte.
func (a Alphabet) Validate() error {
	if a.Size < 1 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidAlphabet, a.Size)
	}
	if a.Size > 0x100-int(a.Offset) {
		return fmt.Errorf("%w: offset %d with size %d exceeds 255", ErrInvalidAlphabet, a.Offset, a.Size)
	}
	return nil
}

// Contains reports whether c lies in the alphabet.
func (a Alphabet) Contains(c byte) bool {
	return int(c) >= int(a.Offset) && int(c)-int(a.Offset) < a.Size
}

// Fill writes n random characters from the alphabet [aoff, aoff+a-1] into
// dst[:n] and a zero terminator into dst[n].
//
// Preconditions, each of which panics when violated:
//   - len(dst) >= n+1
//   - a >= 1 and aoff+a-1 <= 255
//   - src is non-nil
//
// src is advanced by exactly n draws. Fill does not seed, reset or retain it;
// callers sharing a source across goroutines must serialize access.
func Fill(dst []byte, n, a int, aoff byte, src rand.Source) {
	if n < 0 {
		panic(fmt.Sprintf("randstr: negative length %d", n))
	}
	if len(dst) < n+1 {
		panic(fmt.Sprintf("randstr: %d byte buffer cannot hold %d characters and terminator", len(dst), n))
	}
	if err := (Alphabet{Size: a, Offset: aoff}).Validate(); err != nil {
		panic("randstr: " + err.Error())
	}
	if src == nil {
		panic("randstr: nil source")
	}

	size := uint64(a)
	for i := 0; i < n; i++ {
		dst[i] = aoff + byte(src.Uint64()%size)
	}
	dst[n] = 0
}

// String returns a random string of n characters from alpha.
func String(n int, alpha Alphabet, src rand.Source) string {
	buf := make([]byte, n+1)
	Fill(buf, n, alpha.Size, alpha.Offset, src)
	return string(buf[:n])
}
