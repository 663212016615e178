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
	"text/tabwriter"

	"github.com/ajroetker/go-mergetrace/msort"
	"github.com/ajroetker/go-mergetrace/msort/contrib/report"
	"github.com/spf13/cobra"
)

func newComplexityCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "complexity",
		Short: "Print the complexity of merge sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Report.Format
			if cmd.Flags().Changed("format") {
				name = format
			}
			f, err := report.ParseFormat(name)
			if err != nil {
				return err
			}

			c := msort.ComplexityInfo()
			if f != report.Text {
				return report.Encode(a.stdout, f, c)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "Time Complexity:\t%s\n", c.TimeComplexity)
			fmt.Fprintf(tw, "Space Complexity:\t%s\n", c.SpaceComplexity)
			fmt.Fprintf(tw, "Best Case:\t%s\n", c.BestCase)
			fmt.Fprintf(tw, "Average Case:\t%s\n", c.AverageCase)
			fmt.Fprintf(tw, "Worst Case:\t%s\n", c.WorstCase)
			fmt.Fprintf(tw, "Stable:\t%s\n", yesNo(c.Stable))
			fmt.Fprintf(tw, "In-Place:\t%s\n", yesNo(c.InPlace))
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "\n%s\n%s\n", c.TimeExplanation, c.SpaceExplanation)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format (text, json, yaml)")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
