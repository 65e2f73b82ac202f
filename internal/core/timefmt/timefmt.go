// Package timefmt renders elapsed simulation time as short human-readable
// strings such as "0.00s", "2.09m" or "3.50d".
//
// The unit is chosen adaptively: the coarsest of seconds, minutes, hours and
// days whose magnitude is at least one. Durations longer than a day stay in
// days, however large. Values are rendered fixed-point with two fractional
// digits followed by a one-letter unit suffix.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Precision is the number of fractional digits in every rendering.
const Precision = 2

// MinBufLen is the smallest destination buffer Format accepts: the shortest
// rendering ("0.00s") plus its terminator.
const MinBufLen = len("0.00s") + 1

var (
	// ErrInvalidFormat indicates a string that is not a number followed by a unit suffix.
	ErrInvalidFormat = errors.New("invalid time format")
	// ErrUnknownUnit indicates a unit suffix other than s, m, h or d.
	ErrUnknownUnit = errors.New("unknown time unit")
)

type unit struct {
	suffix  byte
	seconds float64
}

// units is ordered finest to coarsest.
var units = [...]unit{
	{suffix: 's', seconds: 1},
	{suffix: 'm', seconds: 60},
	{suffix: 'h', seconds: 60 * 60},
	{suffix: 'd', seconds: 24 * 60 * 60},
}

// Format writes the rendering of t seconds into dst followed by a zero
// terminator and returns the length of the rendering, excluding the
// terminator.
//
// len(dst) is the maximum number of bytes Format may write. Callers must size
// dst to hold the rendering and its terminator; MinBufLen covers durations
// below ten units and 32 bytes covers any practical simulation time. A dst
// that is too small causes a panic rather than a truncated result.
//
// t must be non-negative. Negative, NaN and infinite inputs produce
// unspecified (but memory-safe) output.
func Format(dst []byte, t float64) int {
	var scratch [32]byte
	out := Append(scratch[:0], t)
	if len(out)+1 > len(dst) {
		panic(fmt.Sprintf("timefmt: %d byte buffer cannot hold %q and terminator", len(dst), out))
	}
	n := copy(dst, out)
	dst[n] = 0
	return n
}

// Append appends the rendering of t seconds to dst and returns the extended
// slice. It does not append a terminator.
func Append(dst []byte, t float64) []byte {
	u := unitFor(t)
	dst = strconv.AppendFloat(dst, t/u.seconds, 'f', Precision, 64)
	return append(dst, u.suffix)
}

// String returns the rendering of t seconds.
func String(t float64) string {
	var scratch [32]byte
	return string(Append(scratch[:0], t))
}

// Duration returns the rendering of d.
func Duration(d time.Duration) string {
	return String(d.Seconds())
}

// Parse converts a rendering produced by Format back into seconds. The
// result matches the original duration to within half of the last rendered
// digit of the chosen unit.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
	}
	suffix := s[len(s)-1]
	seconds, ok := unitSeconds(suffix)
	if !ok {
		return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownUnit)
	}
	v, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidFormat)
	}
	return v * seconds, nil
}

// Tolerance returns the maximum absolute error, in seconds, between t and
// Parse(String(t)).
func Tolerance(t float64) float64 {
	u := unitFor(t)
	return 0.5 * u.seconds * math.Pow10(-Precision)
}

func unitFor(t float64) unit {
	u := units[0]
	for _, next := range units[1:] {
		if !(t >= next.seconds) {
			break
		}
		u = next
	}
	return u
}

func unitSeconds(suffix byte) (float64, bool) {
	for _, u := range units {
		if u.suffix == suffix {
			return u.seconds, true
		}
	}
	return 0, false
}
