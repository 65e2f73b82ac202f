// Package dlog provides diagnostic printing that can be switched off at
// build time or redirected at runtime.
//
// Printf checks the Enabled constant first, so in a binary built with
// -tags nodebug it returns without formatting or writing. Its arguments are
// still evaluated at the call site; wrap calls whose arguments are costly to
// build in "if dlog.Enabled" so the compiler drops them too. When enabled,
// output goes to the current Logger, which defaults to stderr and can be
// replaced with SetOutput (for example with Nop to silence a test).
package dlog

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger receives diagnostic lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

// New returns a plain-text Logger writing one line per call to w.
func New(w io.Writer) Logger {
	return log.New(w, "", 0)
}

type holder struct {
	logger Logger
}

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{logger: New(os.Stderr)})
}

// SetOutput replaces the Logger used by Printf. A nil logger discards output.
func SetOutput(logger Logger) {
	if logger == nil {
		logger = Nop()
	}
	current.Store(&holder{logger: logger})
}

// Output returns the Logger used by Printf.
func Output() Logger {
	return current.Load().logger
}

// Printf writes a diagnostic line when diagnostics are compiled in.
// Arguments are evaluated by the caller either way.
func Printf(format string, args ...any) {
	if !Enabled {
		return
	}
	current.Load().logger.Printf(format, args...)
}
