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

// Package bench measures the instrumented merge sort over a grid of input
// patterns and sizes and compares the comparison count with n·log2(n).
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-mergetrace/msort"
	"github.com/ajroetker/go-mergetrace/msort/contrib/sample"
	"github.com/ajroetker/go-mergetrace/msort/contrib/workerpool"
)

// Case is one benchmark input.
type Case struct {
	Pattern sample.Pattern `json:"pattern" yaml:"pattern"`
	Size    int            `json:"size" yaml:"size"`
}

// Cases returns every combination of patterns and sizes, patterns outermost.
func Cases(patterns []sample.Pattern, sizes []int) []Case {
	cases := make([]Case, 0, len(patterns)*len(sizes))
	for _, p := range patterns {
		for _, n := range sizes {
			cases = append(cases, Case{Pattern: p, Size: n})
		}
	}
	return cases
}

// Row is the measurement of one Case.
type Row struct {
	Case       `yaml:",inline"`
	Statistics msort.Statistics `json:"statistics" yaml:"statistics"`

	// Theoretical is n·log2(n), zero for n < 2.
	Theoretical float64 `json:"theoretical" yaml:"theoretical"`

	// Ratio is Comparisons / Theoretical, zero when Theoretical is zero.
	Ratio float64 `json:"ratio" yaml:"ratio"`

	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Report is the outcome of Run. Rows follow the order of the input cases.
type Report struct {
	Host Host   `json:"host" yaml:"host"`
	Seed uint64 `json:"seed" yaml:"seed"`
	Rows []Row  `json:"rows" yaml:"rows"`
}

// Options configures Run.
type Options struct {
	// Workers is the number of concurrent sorts. <= 0 uses GOMAXPROCS.
	Workers int

	// Seed makes generated inputs reproducible. Case i uses Seed+i.
	Seed uint64

	// Logger receives per-case debug records. Nil discards them.
	Logger *slog.Logger
}

// Run sorts one generated input per case, each on its own Engine, and
// verifies every result.
func Run(ctx context.Context, cases []Case, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	rows := make([]Row, len(cases))
	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := pool.Each(runCtx, len(cases), func(i int) {
		c := cases[i]
		input, err := sample.New(opts.Seed+uint64(i)).Generate(c.Pattern, c.Size)
		if err != nil {
			fail(fmt.Errorf("bench: case %v/%d: %w", c.Pattern, c.Size, err))
			cancel()
			return
		}

		e := msort.New[int]()
		start := time.Now()
		sorted := e.Sort(input, true)
		elapsed := time.Since(start)

		if !slices.IsSorted(sorted) || len(sorted) != len(input) {
			fail(fmt.Errorf("bench: case %v/%d: result is not sorted", c.Pattern, c.Size))
			cancel()
			return
		}

		row := Row{Case: c, Statistics: e.Statistics(), Elapsed: elapsed}
		if c.Size >= 2 {
			n := float64(c.Size)
			row.Theoretical = n * math.Log2(n)
			row.Ratio = float64(row.Statistics.Comparisons) / row.Theoretical
		}
		rows[i] = row

		logger.Debug("bench case done",
			slog.String("pattern", c.Pattern.String()),
			slog.Int("size", c.Size),
			slog.Int("comparisons", row.Statistics.Comparisons),
			slog.Int("accesses", row.Statistics.Accesses),
			slog.Duration("elapsed", elapsed))
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}

	return &Report{Host: DetectHost(), Seed: opts.Seed, Rows: rows}, nil
}

// WriteTable prints r as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Pattern\tSize\tComparisons\tArray Accesses\tSteps\tn log2 n\tRatio\t\n")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.0f\t%.2f\t\n",
			row.Pattern, row.Size,
			row.Statistics.Comparisons, row.Statistics.Accesses, row.Statistics.Steps,
			row.Theoretical, row.Ratio)
	}
	return tw.Flush()
}
