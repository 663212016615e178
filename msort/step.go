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

import (
	"fmt"
)

// StepKind identifies the event a Step records.
type StepKind int

const (
	// KindDivide marks the split of a range at its midpoint.
	KindDivide StepKind = iota

	// KindMergeStart marks the copy of two sorted runs into merge buffers.
	KindMergeStart

	// KindMergeStep marks one comparison and the placement it decided.
	KindMergeStep

	// KindMergeRemaining marks a leftover value copied without comparison.
	KindMergeRemaining

	// KindMergeComplete marks the end of a merge.
	KindMergeComplete
)

var stepKindNames = [...]string{
	KindDivide:         "divide",
	KindMergeStart:     "merge_start",
	KindMergeStep:      "merge_step",
	KindMergeRemaining: "merge_remaining",
	KindMergeComplete:  "merge_complete",
}

// String returns the snake_case name of the kind.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}
	return stepKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k StepKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(stepKindNames) {
		return nil, fmt.Errorf("msort: invalid step kind %d", int(k))
	}
	return []byte(stepKindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StepKind) UnmarshalText(text []byte) error {
	for i, name := range stepKindNames {
		if name == string(text) {
			*k = StepKind(i)
			return nil
		}
	}
	return fmt.Errorf("msort: unknown step kind %q", text)
}

// Step is one immutable event of an instrumented sort.
//
// The set of implementations is closed: Divide, MergeStart, MergeStep,
// MergeRemaining and MergeComplete. Consumers switch on the concrete type.
// Slices reachable from a Step are owned by the trace and must not be
// modified.
type Step[T Element] interface {
	// Kind returns the event discriminator.
	Kind() StepKind

	// Array returns the full working array as it was when the event occurred.
	Array() []T

	// Description returns a one-line human-readable summary.
	Description() string

	step()
}

// Divide records the split of [Left, Right] at Mid.
type Divide[T Element] struct {
	Snapshot []T
	Left     int
	Mid      int
	Right    int
}

func (Divide[T]) Kind() StepKind { return KindDivide }
func (s Divide[T]) Array() []T { return s.Snapshot }
func (Divide[T]) step() {}
func (s Divide[T]) Description() string {
	return fmt.Sprintf("Dividing array from index %d to %d at mid %d", s.Left, s.Right, s.Mid)
}

// MergeStart records the two sorted runs [Left, Mid] and [Mid+1, Right]
// right before they are interleaved.
type MergeStart[T Element] struct {
	Snapshot []T
	Left     int
	Mid      int
	Right    int
	LeftRun  []T
	RightRun []T
}

func (MergeStart[T]) Kind() StepKind { return KindMergeStart }
func (s MergeStart[T]) Array() []T { return s.Snapshot }
func (MergeStart[T]) step() {}
func (s MergeStart[T]) Description() string {
	return fmt.Sprintf("Merging subarrays: %v and %v", s.LeftRun, s.RightRun)
}

// MergeStep records one comparison between the heads of the two runs.
// Compared holds the left-run value first. Snapshot is taken after Chosen
// was written to Position.
type MergeStep[T Element] struct {
	Snapshot []T
	Compared [2]T
	Chosen   T
	FromLeft bool
	Position int
}

func (MergeStep[T]) Kind() StepKind { return KindMergeStep }
func (s MergeStep[T]) Array() []T { return s.Snapshot }
func (MergeStep[T]) step() {}
func (s MergeStep[T]) Description() string {
	if s.FromLeft {
		return fmt.Sprintf("Comparing %v <= %v, placing %v at position %d",
			s.Compared[0], s.Compared[1], s.Chosen, s.Position)
	}
	return fmt.Sprintf("Comparing %v > %v, placing %v at position %d",
		s.Compared[0], s.Compared[1], s.Chosen, s.Position)
}

// MergeRemaining records a value drained from the run that was not
// exhausted.
type MergeRemaining[T Element] struct {
	Snapshot []T
	Element  T
	FromLeft bool
	Position int
}

func (MergeRemaining[T]) Kind() StepKind { return KindMergeRemaining }
func (s MergeRemaining[T]) Array() []T { return s.Snapshot }
func (MergeRemaining[T]) step() {}
func (s MergeRemaining[T]) Description() string {
	return fmt.Sprintf("Copying remaining element %v to position %d", s.Element, s.Position)
}

// MergeComplete records that [Left, Right] is now sorted.
type MergeComplete[T Element] struct {
	Snapshot []T
	Left     int
	Right    int
}

func (MergeComplete[T]) Kind() StepKind { return KindMergeComplete }
func (s MergeComplete[T]) Array() []T { return s.Snapshot }
func (MergeComplete[T]) step() {}
func (s MergeComplete[T]) Description() string {
	return fmt.Sprintf("Completed merging from index %d to %d", s.Left, s.Right)
}
