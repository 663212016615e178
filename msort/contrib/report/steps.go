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

package report

import (
	"fmt"
	"io"

	"github.com/ajroetker/go-mergetrace/msort"
)

// StepView is the flat, serializable form of a msort.Step. Fields that do
// not apply to Kind are omitted.
type StepView[T msort.Element] struct {
	Index       int            `json:"index" yaml:"index"`
	Kind        msort.StepKind `json:"kind" yaml:"kind"`
	Description string         `json:"description" yaml:"description"`
	Array       []T            `json:"array" yaml:"array"`
	Left        *int           `json:"left,omitempty" yaml:"left,omitempty"`
	Mid         *int           `json:"mid,omitempty" yaml:"mid,omitempty"`
	Right       *int           `json:"right,omitempty" yaml:"right,omitempty"`
	LeftRun     []T            `json:"left_run,omitempty" yaml:"left_run,omitempty"`
	RightRun    []T            `json:"right_run,omitempty" yaml:"right_run,omitempty"`
	Compared    []T            `json:"compared,omitempty" yaml:"compared,omitempty"`
	Chosen      *T             `json:"chosen,omitempty" yaml:"chosen,omitempty"`
	Element     *T             `json:"element,omitempty" yaml:"element,omitempty"`
	FromLeft    *bool          `json:"from_left,omitempty" yaml:"from_left,omitempty"`
	Position    *int           `json:"position,omitempty" yaml:"position,omitempty"`
}

// ViewSteps flattens steps. Index is 1-based.
func ViewSteps[T msort.Element](steps []msort.Step[T]) []StepView[T] {
	views := make([]StepView[T], 0, len(steps))
	for i, s := range steps {
		v := StepView[T]{
			Index:       i + 1,
			Kind:        s.Kind(),
			Description: s.Description(),
			Array:       s.Array(),
		}
		switch s := s.(type) {
		case msort.Divide[T]:
			v.Left, v.Mid, v.Right = &s.Left, &s.Mid, &s.Right
		case msort.MergeStart[T]:
			v.Left, v.Mid, v.Right = &s.Left, &s.Mid, &s.Right
			v.LeftRun, v.RightRun = s.LeftRun, s.RightRun
		case msort.MergeStep[T]:
			v.Compared = s.Compared[:]
			v.Chosen, v.FromLeft, v.Position = &s.Chosen, &s.FromLeft, &s.Position
		case msort.MergeRemaining[T]:
			v.Element, v.FromLeft, v.Position = &s.Element, &s.FromLeft, &s.Position
		case msort.MergeComplete[T]:
			v.Left, v.Right = &s.Left, &s.Right
		}
		views = append(views, v)
	}
	return views
}

// WriteSteps renders a trace to w, one block per step.
func WriteSteps[T msort.Element](w io.Writer, steps []msort.Step[T], opts Options) error {
	switch opts.Format {
	case Text:
		return writeStepsText(w, steps, opts.MaxDisplay)
	case JSON, YAML:
		return Encode(w, opts.Format, ViewSteps(steps))
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}
}

func writeStepsText[T msort.Element](w io.Writer, steps []msort.Step[T], maxDisplay int) error {
	ew := &errWriter{w: w}
	for i, s := range steps {
		fmt.Fprintf(ew, "Step %d [%s] %s\n", i+1, s.Kind(), s.Description())
		fmt.Fprintf(ew, "  array: %s\n", FormatArray(s.Array(), maxDisplay))
		switch s := s.(type) {
		case msort.Divide[T]:
			fmt.Fprintf(ew, "  range: [%d, %d] mid: %d\n", s.Left, s.Right, s.Mid)
		case msort.MergeStart[T]:
			fmt.Fprintf(ew, "  left run: %s\n", FormatArray(s.LeftRun, maxDisplay))
			fmt.Fprintf(ew, "  right run: %s\n", FormatArray(s.RightRun, maxDisplay))
		case msort.MergeStep[T]:
			fmt.Fprintf(ew, "  comparing: %v and %v\n", s.Compared[0], s.Compared[1])
			fmt.Fprintf(ew, "  chosen: %v (%s run)\n", s.Chosen, side(s.FromLeft))
			fmt.Fprintf(ew, "  position: %d\n", s.Position)
		case msort.MergeRemaining[T]:
			fmt.Fprintf(ew, "  element: %v (%s run)\n", s.Element, side(s.FromLeft))
			fmt.Fprintf(ew, "  position: %d\n", s.Position)
		case msort.MergeComplete[T]:
			fmt.Fprintf(ew, "  range: [%d, %d]\n", s.Left, s.Right)
		}
	}
	return ew.err
}

func side(fromLeft bool) string {
	if fromLeft {
		return "left"
	}
	return "right"
}
