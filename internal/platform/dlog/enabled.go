//go:build !nodebug

package dlog

// Enabled reports whether diagnostic output is compiled in. Build with
// -tags nodebug to remove it.
const Enabled = true
