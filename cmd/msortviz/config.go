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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ajroetker/go-mergetrace/msort/contrib/report"
	"github.com/ajroetker/go-mergetrace/msort/contrib/sample"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults of every command. Flags override it.
type Config struct {
	Sample SampleConfig `yaml:"sample"`
	Report ReportConfig `yaml:"report"`
	Bench  BenchConfig  `yaml:"bench"`
	Log    LogConfig    `yaml:"log"`
}

// SampleConfig selects the generated input of the sort command.
type SampleConfig struct {
	Pattern string `yaml:"pattern"`
	Size    int    `yaml:"size"`
	Seed    uint64 `yaml:"seed"`
}

// ReportConfig controls rendering.
type ReportConfig struct {
	Format     string `yaml:"format"`
	MaxDisplay int    `yaml:"max_display"`
	Steps      bool   `yaml:"steps"`
}

// BenchConfig is the grid of the bench command.
type BenchConfig struct {
	Patterns []string `yaml:"patterns"`
	Sizes    []int    `yaml:"sizes"`
	Workers  int      `yaml:"workers"`
	Seed     uint64   `yaml:"seed"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	patterns := make([]string, 0, len(sample.Patterns()))
	for _, p := range sample.Patterns() {
		patterns = append(patterns, p.String())
	}
	return Config{
		Sample: SampleConfig{Pattern: sample.Random.String(), Size: 10, Seed: 1},
		Report: ReportConfig{Format: report.Text.String(), MaxDisplay: report.DefaultMaxDisplay},
		Bench: BenchConfig{
			Patterns: patterns,
			Sizes:    []int{10, 50, 100, 500, 1000},
			Seed:     1,
		},
		Log: LogConfig{Level: "info", Format: "auto"},
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every named value is known and every number is in
// range.
func (c Config) Validate() error {
	var errs []error
	if _, err := sample.ParsePattern(c.Sample.Pattern); err != nil {
		errs = append(errs, fmt.Errorf("sample.pattern: %w", err))
	}
	if c.Sample.Size < 0 {
		errs = append(errs, fmt.Errorf("sample.size: must not be negative, got %d", c.Sample.Size))
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		errs = append(errs, fmt.Errorf("report.format: %w", err))
	}
	if len(c.Bench.Sizes) == 0 {
		errs = append(errs, errors.New("bench.sizes: at least one size is required"))
	}
	for _, n := range c.Bench.Sizes {
		if n < 0 {
			errs = append(errs, fmt.Errorf("bench.sizes: must not be negative, got %d", n))
		}
	}
	for _, name := range c.Bench.Patterns {
		if _, err := sample.ParsePattern(name); err != nil {
			errs = append(errs, fmt.Errorf("bench.patterns: %w", err))
		}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q (want auto, text or json)", c.Log.Format))
	}
	return errors.Join(errs...)
}
