package config

import (
	"fmt"
	"os"
)

// ExitCodeFailure is the process status used by Exitf.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with
// ExitCodeFailure. It is the fatal-exit path for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitCodeFailure)
}
