// Package ultrasort provides a hybrid merge sort ("ultra sort") that switches
// to insertion sort once a span is at or below a size threshold.
//
// # Algorithm
//
// The input is split at its midpoint until a span holds threshold elements or
// fewer. Those spans are sorted with insertion sort, and the sorted halves are
// combined with a stable linear merge through a single scratch buffer.
//
//   - threshold = 1 degenerates to a plain top-down merge sort
//   - larger thresholds trade recursion and merge overhead on tiny spans for
//     insertion sort, which is fast on short and nearly sorted inputs
//
// # Example Usage
//
//	import "github.com/ajroetker/go-experiments/ultrasort"
//
//	func Process(data []int) {
//	    ultrasort.Sort(data, ultrasort.DefaultThreshold)
//	}
//
// The sort is stable: SortFunc keeps equal elements in their input order.
package ultrasort
