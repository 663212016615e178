// Package msort provides an instrumented top-down merge sort.
//
// Besides the sorted result, an instrumented run keeps a replayable trace of
// every split, comparison and placement together with comparison and
// array-access counters. The trace is meant to drive step-by-step
// visualizations and teaching material.
//
// # Algorithm
//
// The range [left, right] is split at mid = floor((left+right)/2), the halves
// are sorted left first, then merged through two buffer copies. On equal
// heads the left value is taken, so the sort is stable.
//
// # Supported Types
//
// Any type satisfying Element: integers, floats and strings (including named
// types based on them). NaN breaks the total order; SortChecked rejects it.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mergetrace/msort"
//
//	func Explain(data []int) {
//	    e := msort.New[int]()
//	    sorted := e.Sort(data, true)
//	    for _, s := range e.Steps() {
//	        fmt.Println(s.Description())
//	    }
//	    fmt.Println(sorted, e.Statistics())
//	}
//
// # Counters
//
// Each comparison adds one comparison and two array accesses. Each value
// written back into the working array adds one array access. The trace
// holds one Divide per split, and per merge one MergeStart, one MergeStep per
// comparison, one MergeRemaining per drained value and one MergeComplete.
//
// An Engine is not safe for concurrent use. Sorting the same input on
// several goroutines requires one Engine each.
package msort
