package timefmt

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		secs float64
		want string
	}{
		{name: "zero", secs: 0, want: "0.00s"},
		{name: "sub-second", secs: 0.25, want: "0.25s"},
		{name: "seconds", secs: 42.5, want: "42.50s"},
		{name: "just under a minute", secs: 59.99, want: "59.99s"},
		{name: "one minute", secs: 60, want: "1.00m"},
		{name: "minutes", secs: 125.4, want: "2.09m"},
		{name: "one hour", secs: 3600, want: "1.00h"},
		{name: "hours", secs: 2 * 3600, want: "2.00h"},
		{name: "one day", secs: 86400, want: "1.00d"},
		{name: "days", secs: 3.5 * 86400, want: "3.50d"},
		{name: "years stay in days", secs: 365 * 86400, want: "365.00d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 32)
			n := Format(buf, tt.secs)
			if got := string(buf[:n]); got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.secs, got, tt.want)
			}
			if buf[n] != 0 {
				t.Fatalf("Format(%v) left byte %d unterminated", tt.secs, n)
			}
			if got := String(tt.secs); got != tt.want {
				t.Fatalf("String(%v) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}

func TestFormatMinimalBuffer(t *testing.T) {
	buf := make([]byte, MinBufLen)
	n := Format(buf, 0)
	if string(buf[:n]) != "0.00s" || buf[n] != 0 {
		t.Fatalf("unexpected minimal rendering %q", buf)
	}
}

func TestFormatDoesNotWritePastBuffer(t *testing.T) {
	backing := []byte("xxxxxxxxxxxxxxxx")
	dst := backing[:8]
	n := Format(dst, 125.4)
	if string(dst[:n]) != "2.09m" {
		t.Fatalf("unexpected rendering %q", dst[:n])
	}
	if string(backing[8:]) != "xxxxxxxx" {
		t.Fatalf("bytes beyond dst were modified: %q", backing[8:])
	}
}

func TestFormatPanicsOnUndersizedBuffer(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for undersized buffer")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "cannot hold") {
			t.Fatalf("unexpected panic value %v", r)
		}
	}()
	Format(make([]byte, 5), 0)
}

func TestAppend(t *testing.T) {
	got := Append([]byte("elapsed "), 7200)
	if string(got) != "elapsed 2.00h" {
		t.Fatalf("Append = %q", got)
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(90 * time.Second); got != "1.50m" {
		t.Fatalf("Duration(90s) = %q, want 1.50m", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	samples := []float64{0, 0.004, 1, 12.345, 59.5, 61, 125.4, 1234.5, 3599, 3600.5, 45000, 86399, 86400, 1e6, 1e9}
	for _, secs := range samples {
		rendered := String(secs)
		got, err := Parse(rendered)
		if err != nil {
			t.Fatalf("Parse(%q): %v", rendered, err)
		}
		tol := Tolerance(secs) * (1 + 1e-9)
		if diff := math.Abs(got - secs); diff > tol {
			t.Errorf("round trip %v -> %q -> %v differs by %v (tolerance %v)", secs, rendered, got, diff, tol)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrInvalidFormat},
		{in: "s", want: ErrInvalidFormat},
		{in: "abcm", want: ErrInvalidFormat},
		{in: "2.00y", want: ErrUnknownUnit},
		{in: "42", want: ErrUnknownUnit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParseTrimsSpace(t *testing.T) {
	got, err := Parse(" 1.50m\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90 seconds, got %v", got)
	}
}
