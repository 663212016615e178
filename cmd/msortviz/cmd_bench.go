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
	"strings"

	"github.com/ajroetker/go-mergetrace/msort/contrib/bench"
	"github.com/ajroetker/go-mergetrace/msort/contrib/report"
	"github.com/ajroetker/go-mergetrace/msort/contrib/sample"
	"github.com/spf13/cobra"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes    []int
		patterns []string
		workers  int
		seed     uint64
		format   string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Count comparisons and accesses over a grid of inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Bench
			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Sizes = sizes
			}
			if flags.Changed("patterns") {
				cfg.Patterns = patterns
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			outFormat := a.cfg.Report.Format
			if flags.Changed("format") {
				outFormat = format
			}

			f, err := report.ParseFormat(outFormat)
			if err != nil {
				return err
			}
			ps := make([]sample.Pattern, 0, len(cfg.Patterns))
			for _, name := range cfg.Patterns {
				p, err := sample.ParsePattern(name)
				if err != nil {
					return err
				}
				ps = append(ps, p)
			}

			cases := bench.Cases(ps, cfg.Sizes)
			a.logger.Info("running benchmark",
				slog.Int("cases", len(cases)),
				slog.Int("workers", cfg.Workers))
			rep, err := bench.Run(cmd.Context(), cases, bench.Options{
				Workers: cfg.Workers,
				Seed:    cfg.Seed,
				Logger:  a.logger,
			})
			if err != nil {
				return err
			}

			if f != report.Text {
				return report.Encode(a.stdout, f, rep)
			}
			fmt.Fprintf(a.stdout, "Host: %s/%s, %d CPUs", rep.Host.GOOS, rep.Host.GOARCH, rep.Host.NumCPU)
			if len(rep.Host.Features) > 0 {
				fmt.Fprintf(a.stdout, " (%s)", strings.Join(rep.Host.Features, ", "))
			}
			fmt.Fprintf(a.stdout, "\n\n")
			return rep.WriteTable(a.stdout)
		},
	}

	fl := cmd.Flags()
	fl.IntSliceVar(&sizes, "sizes", nil, "Comma-separated array sizes")
	fl.StringSliceVar(&patterns, "patterns", nil, "Comma-separated sample patterns")
	fl.IntVar(&workers, "workers", 0, "Concurrent sorts (0 uses GOMAXPROCS)")
	fl.Uint64Var(&seed, "seed", 0, "Base seed for generated inputs")
	fl.StringVar(&format, "format", "", "Output format (text, json, yaml)")
	return cmd
}
