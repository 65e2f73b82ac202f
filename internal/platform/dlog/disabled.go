//go:build nodebug

package dlog

// Enabled reports whether diagnostic output is compiled in.
const Enabled = false
