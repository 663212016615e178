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

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ajroetker/go-mergetrace/msort"
	"github.com/ajroetker/go-mergetrace/msort/contrib/report"
	"github.com/ajroetker/go-mergetrace/msort/contrib/sample"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		pattern    string
		size       int
		seed       uint64
		fixture    string
		steps      bool
		format     string
		maxDisplay int
	)

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort integers and report statistics",
		Long: `Sort the integers given as arguments. Without arguments a sample array
is generated from --pattern, --size and --seed, or taken from --fixture.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("pattern") {
				cfg.Sample.Pattern = pattern
			}
			if flags.Changed("size") {
				cfg.Sample.Size = size
			}
			if flags.Changed("seed") {
				cfg.Sample.Seed = seed
			}
			if flags.Changed("steps") {
				cfg.Report.Steps = steps
			}
			if flags.Changed("format") {
				cfg.Report.Format = format
			}
			if flags.Changed("max-display") {
				cfg.Report.MaxDisplay = maxDisplay
			}

			f, err := report.ParseFormat(cfg.Report.Format)
			if err != nil {
				return err
			}

			input, err := sortInput(args, fixture, cfg.Sample)
			if err != nil {
				return err
			}

			e := msort.New[int]()
			sorted := e.Sort(input, true)
			stats := e.Statistics()
			a.logger.Debug("sort finished",
				slog.Int("size", len(input)),
				slog.Int("comparisons", stats.Comparisons),
				slog.Int("accesses", stats.Accesses),
				slog.Int("steps", stats.Steps))

			res := report.NewResult(e, input, sorted)
			opts := report.Options{Format: f, MaxDisplay: cfg.Report.MaxDisplay}
			if cfg.Report.Steps {
				return report.WriteRun(a.stdout, res, e.Steps(), opts)
			}
			return report.Write(a.stdout, res, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&pattern, "pattern", "", "Sample pattern (random, sorted, reversed, nearly-sorted, duplicates)")
	fl.IntVar(&size, "size", 0, "Sample size")
	fl.Uint64Var(&seed, "seed", 0, "Sample seed")
	fl.StringVar(&fixture, "fixture", "", "Named fixture to sort (random_small, duplicates, ...)")
	fl.BoolVar(&steps, "steps", false, "Print every recorded step")
	fl.StringVar(&format, "format", "", "Output format (text, json, yaml)")
	fl.IntVar(&maxDisplay, "max-display", 0, "Abbreviate arrays longer than this (0 disables)")
	cmd.MarkFlagsMutuallyExclusive("fixture", "pattern")
	return cmd
}

// sortInput picks the array to sort: explicit arguments first, then a
// fixture, then a generated sample.
func sortInput(args []string, fixture string, cfg SampleConfig) ([]int, error) {
	if len(args) > 0 {
		if fixture != "" {
			return nil, fmt.Errorf("values and --fixture are mutually exclusive")
		}
		values := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, arg, err)
			}
			values[i] = v
		}
		return values, nil
	}
	if fixture != "" {
		return sample.Fixture(fixture)
	}

	p, err := sample.ParsePattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return sample.New(cfg.Seed).Generate(p, cfg.Size)
}
