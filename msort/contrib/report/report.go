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

// Package report renders the outcome of an instrumented sort: a summary of
// the run and a step-by-step listing of its trace, as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ajroetker/go-mergetrace/msort"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDisplay is the number of array elements shown before an array
// is abbreviated.
const DefaultMaxDisplay = 20

// ErrUnknownFormat is returned by ParseFormat and the writers for
// unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

var formatNames = [...]string{Text: "text", JSON: "json", YAML: "yaml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts "text", "json" or "yaml" into a Format.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == key {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, name)
}

// Options controls rendering.
type Options struct {
	Format Format

	// MaxDisplay abbreviates arrays longer than this in text output.
	// Zero or negative disables abbreviation.
	MaxDisplay int
}

// Result is everything known about one instrumented run.
type Result[T msort.Element] struct {
	Algorithm  string           `json:"algorithm" yaml:"algorithm"`
	Original   []T              `json:"original" yaml:"original"`
	Sorted     []T              `json:"sorted" yaml:"sorted"`
	Statistics msort.Statistics `json:"statistics" yaml:"statistics"`
	Complexity msort.Complexity `json:"complexity" yaml:"complexity"`
}

// NewResult collects the result of the last instrumented run of e.
func NewResult[T msort.Element](e *msort.Engine[T], original, sorted []T) Result[T] {
	return Result[T]{
		Algorithm:  "Merge Sort",
		Original:   original,
		Sorted:     sorted,
		Statistics: e.Statistics(),
		Complexity: e.ComplexityInfo(),
	}
}

// FormatArray prints values, abbreviating to the first and last elements
// when there are more than maxDisplay of them.
func FormatArray[T any](values []T, maxDisplay int) string {
	if maxDisplay <= 0 || len(values) <= maxDisplay {
		return fmt.Sprint(values)
	}
	head := maxDisplay / 2
	tail := maxDisplay - head
	return fmt.Sprintf("%v ... %v (length: %d)", values[:head], values[len(values)-tail:], len(values))
}

// Write renders r to w.
func Write[T msort.Element](w io.Writer, r Result[T], opts Options) error {
	switch opts.Format {
	case Text:
		return writeText(w, r, opts.MaxDisplay)
	case JSON, YAML:
		return Encode(w, opts.Format, r)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}
}

// Run is a Result together with the trace that produced it.
type Run[T msort.Element] struct {
	Result Result[T]     `json:"result" yaml:"result"`
	Steps  []StepView[T] `json:"steps" yaml:"steps"`
}

// WriteRun renders the trace followed by the summary. JSON and YAML output
// is a single document holding both.
func WriteRun[T msort.Element](w io.Writer, r Result[T], steps []msort.Step[T], opts Options) error {
	if opts.Format != Text {
		return Encode(w, opts.Format, Run[T]{Result: r, Steps: ViewSteps(steps)})
	}
	if err := writeStepsText(w, steps, opts.MaxDisplay); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return writeText(w, r, opts.MaxDisplay)
}

// Encode writes v as JSON or YAML. Text is not a valid format here.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case JSON:
		return writeJSON(w, v)
	case YAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("%w: %v cannot encode arbitrary values", ErrUnknownFormat, format)
	}
}

func writeText[T msort.Element](w io.Writer, r Result[T], maxDisplay int) error {
	p := message.NewPrinter(language.English)
	ew := &errWriter{w: w}
	p.Fprintf(ew, "%s Results\n", r.Algorithm)
	p.Fprintf(ew, "%s\n\n", strings.Repeat("=", 50))
	p.Fprintf(ew, "Original Array: %s\n", FormatArray(r.Original, maxDisplay))
	p.Fprintf(ew, "Sorted Array: %s\n\n", FormatArray(r.Sorted, maxDisplay))
	p.Fprintf(ew, "Performance Statistics:\n")
	p.Fprintf(ew, "- Array Size: %d\n", len(r.Original))
	p.Fprintf(ew, "- Comparisons: %d\n", r.Statistics.Comparisons)
	p.Fprintf(ew, "- Array Accesses: %d\n", r.Statistics.Accesses)
	p.Fprintf(ew, "- Total Steps: %d\n\n", r.Statistics.Steps)
	p.Fprintf(ew, "Time Complexity: %s\n", r.Complexity.TimeComplexity)
	p.Fprintf(ew, "Space Complexity: %s\n", r.Complexity.SpaceComplexity)
	return ew.err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encoding yaml: %w", err)
	}
	return nil
}

// errWriter remembers the first write error so a block of Fprintf calls
// can be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
