// SPDX-License-Identifier: MIT

package hilbert

import "fmt"

// invariant panics when cond is false. Callers guard it with debugChecks so
// release builds never evaluate the condition.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("hilbert: invariant violated: "+format, args...))
	}
}

// total sums a configuration. Site values are integers, so the sum is exact.
func total(state []float64) float64 {
	var sum float64
	for _, v := range state {
		sum += v
	}

	return sum
}
