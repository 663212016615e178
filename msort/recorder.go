// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msort

import "slices"

// recorder accumulates the trace and counters of one instrumented run.
// All methods are no-ops on a nil receiver, so the sort loop calls them
// unconditionally.
//
// Counting convention: a comparison costs one comparison and two accesses
// (one read per operand); every write into the working array costs one
// access.
type recorder[T Element] struct {
	steps       []Step[T]
	comparisons int
	accesses    int
}

func (r *recorder[T]) divide(data []T, left, mid, right int) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, Divide[T]{
		Snapshot: slices.Clone(data),
		Left:     left,
		Mid:      mid,
		Right:    right,
	})
}

// mergeStart takes ownership of lo and hi. The merge only reads them.
func (r *recorder[T]) mergeStart(data []T, left, mid, right int, lo, hi []T) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, MergeStart[T]{
		Snapshot: slices.Clone(data),
		Left:     left,
		Mid:      mid,
		Right:    right,
		LeftRun:  lo,
		RightRun: hi,
	})
}

func (r *recorder[T]) compare() {
	if r == nil {
		return
	}
	r.comparisons++
	r.accesses += 2
}

func (r *recorder[T]) mergeStep(data []T, a, b, chosen T, fromLeft bool, pos int) {
	if r == nil {
		return
	}
	r.accesses++
	r.steps = append(r.steps, MergeStep[T]{
		Snapshot: slices.Clone(data),
		Compared: [2]T{a, b},
		Chosen:   chosen,
		FromLeft: fromLeft,
		Position: pos,
	})
}

func (r *recorder[T]) remaining(data []T, v T, fromLeft bool, pos int) {
	if r == nil {
		return
	}
	r.accesses++
	r.steps = append(r.steps, MergeRemaining[T]{
		Snapshot: slices.Clone(data),
		Element:  v,
		FromLeft: fromLeft,
		Position: pos,
	})
}

func (r *recorder[T]) mergeComplete(data []T, left, right int) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, MergeComplete[T]{
		Snapshot: slices.Clone(data),
		Left:     left,
		Right:    right,
	})
}
