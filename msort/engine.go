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

// Engine is a top-down merge sort that can record every decision it makes.
//
// The zero value is ready to use. An Engine keeps the trace and counters of
// its most recent instrumented Sort until the next instrumented Sort
// replaces them. An Engine must not be used by more than one goroutine at a
// time; use one Engine per goroutine instead.
type Engine[T Element] struct {
	steps       []Step[T]
	comparisons int
	accesses    int
}

// New returns an empty Engine.
func New[T Element]() *Engine[T] {
	return &Engine[T]{}
}

// Sort returns a sorted copy of input. input itself is never modified.
//
// The result is in non-descending order and stable: equal values keep their
// input order. When instrument is true the previous trace and counters are
// discarded and replaced by the ones of this run. When instrument is false
// the Engine state is left untouched.
func (e *Engine[T]) Sort(input []T, instrument bool) []T {
	var rec *recorder[T]
	if instrument {
		rec = &recorder[T]{}
	}

	data := slices.Clone(input)
	if data == nil {
		data = []T{}
	}
	if len(data) > 1 {
		s := sorter[T]{data: data, rec: rec}
		s.sortRange(0, len(data)-1)
	}

	if rec != nil {
		e.steps = rec.steps
		e.comparisons = rec.comparisons
		e.accesses = rec.accesses
	}
	return data
}

// SortChecked is Sort preceded by Validate. A rejected input leaves the
// Engine state untouched.
func (e *Engine[T]) SortChecked(input []T, instrument bool) ([]T, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}
	return e.Sort(input, instrument), nil
}

// Steps returns the trace of the most recent instrumented Sort, in the order
// the events happened.
func (e *Engine[T]) Steps() []Step[T] {
	return slices.Clone(e.steps)
}

// Statistics returns the counters of the most recent instrumented Sort.
func (e *Engine[T]) Statistics() Statistics {
	return Statistics{
		Comparisons: e.comparisons,
		Accesses:    e.accesses,
		Steps:       len(e.steps),
	}
}

// ComplexityInfo returns the static complexity descriptor of merge sort.
func (e *Engine[T]) ComplexityInfo() Complexity {
	return ComplexityInfo()
}

// sorter holds the working copy of a single Sort call.
type sorter[T Element] struct {
	data []T
	rec  *recorder[T] // nil when not instrumenting
}

// sortRange sorts data[left:right+1].
func (s *sorter[T]) sortRange(left, right int) {
	if left >= right {
		return
	}

	// Same as floor((left+right)/2) for non-negative indices.
	mid := left + (right-left)/2
	s.rec.divide(s.data, left, mid, right)

	s.sortRange(left, mid)
	s.sortRange(mid+1, right)
	s.merge(left, mid, right)
}

// merge interleaves the sorted runs [left, mid] and [mid+1, right].
func (s *sorter[T]) merge(left, mid, right int) {
	// The runs are copied: data[left:right+1] is overwritten while they
	// are read.
	lo := slices.Clone(s.data[left : mid+1])
	hi := slices.Clone(s.data[mid+1 : right+1])
	s.rec.mergeStart(s.data, left, mid, right, lo, hi)

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		a, b := lo[i], hi[j]
		s.rec.compare()
		// Ties go left, which keeps the sort stable.
		if a <= b {
			s.data[k] = a
			s.rec.mergeStep(s.data, a, b, a, true, k)
			i++
		} else {
			s.data[k] = b
			s.rec.mergeStep(s.data, a, b, b, false, k)
			j++
		}
		k++
	}

	for ; i < len(lo); i++ {
		s.data[k] = lo[i]
		s.rec.remaining(s.data, lo[i], true, k)
		k++
	}
	for ; j < len(hi); j++ {
		s.data[k] = hi[j]
		s.rec.remaining(s.data, hi[j], false, k)
		k++
	}

	s.rec.mergeComplete(s.data, left, right)
}
