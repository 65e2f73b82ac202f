// Package progress prints coarse progress for iterative simulations.
package progress

import (
	"fmt"
	"io"
	"math/bits"
)

// Steps is the number of reports emitted over a full run of at least Steps
// iterations, one per 10%.
const Steps = 10

// Step reports whether iteration i (zero-based) of n completes a new 10%
// step, and if so the percentage reached.
//
// For n >= Steps a report is due whenever (i+1)*10/n advances, which happens
// at most once per iteration and exactly Steps times over a run, ending with
// 100 at i == n-1. Runs shorter than Steps report only at their last
// iteration. n <= 0 or i outside [0, n) never reports.
func Step(i, n int) (pct int, ok bool) {
	if n <= 0 || i < 0 || i >= n {
		return 0, false
	}
	if n < Steps {
		if i == n-1 {
			return 100, true
		}
		return 0, false
	}
	cur := stepOf(i+1, n)
	prev := stepOf(i, n)
	if cur == prev {
		return 0, false
	}
	return cur * (100 / Steps), true
}

// stepOf returns done*Steps/n without overflowing for n near MaxInt.
// done <= n and n >= Steps keep the high word below n.
func stepOf(done, n int) int {
	hi, lo := bits.Mul64(uint64(done), Steps)
	q, _ := bits.Div64(hi, lo, uint64(n))
	return int(q)
}

// Report writes "<prefix><pct>% complete" to w when iteration i of n
// completes a new step. Write errors are ignored.
func Report(w io.Writer, prefix string, i, n int) {
	pct, ok := Step(i, n)
	if !ok {
		return
	}
	fmt.Fprintf(w, "%s%3d%% complete\n", prefix, pct)
}
