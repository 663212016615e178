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
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: DefaultConfig()}

	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:   "msortviz",
		Short: "Explore merge sort step by step",
		Long: `msortviz runs an instrumented merge sort and reports every split,
comparison and placement it makes, together with comparison and
array-access counters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			logger, err := newLogger(a.stderr, cfg.Log)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			if configPath != "" {
				logger.Debug("configuration loaded", slog.String("path", configPath))
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML configuration file")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "auto", "Log format (auto, text, json)")

	root.AddCommand(
		newSortCmd(a),
		newBenchCmd(a),
		newComplexityCmd(a),
	)
	return root
}
