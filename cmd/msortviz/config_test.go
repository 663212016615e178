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
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "msortviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "random", cfg.Sample.Pattern)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, 20, cfg.Report.MaxDisplay)
	assert.Len(t, cfg.Bench.Patterns, 5)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
sample:
  pattern: nearly-sorted
  size: 25
bench:
  sizes: [8, 16]
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "nearly-sorted", cfg.Sample.Pattern)
	assert.Equal(t, 25, cfg.Sample.Size)
	assert.Equal(t, uint64(1), cfg.Sample.Seed, "unset keys keep their default")
	assert.Equal(t, []int{8, 16}, cfg.Bench.Sizes)
	assert.Equal(t, DefaultConfig().Bench.Patterns, cfg.Bench.Patterns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "sample:\n  colour: red\n", "colour"},
		{"bad pattern", "sample:\n  pattern: zigzag\n", "sample.pattern"},
		{"negative size", "sample:\n  size: -3\n", "sample.size"},
		{"bad format", "report:\n  format: xml\n", "report.format"},
		{"empty sizes", "bench:\n  sizes: []\n", "bench.sizes"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad log format", "log:\n  format: xml\n", "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, LogConfig{Level: "warn", Format: "auto"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("n", 3))

	// A bytes.Buffer is not a terminal, so auto selects JSON.
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(3), rec["n"])

	buf.Reset()
	logger, err = newLogger(&buf, LogConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = newLogger(&buf, LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
	_, err = newLogger(&buf, LogConfig{Level: "chatty", Format: "json"})
	assert.Error(t, err)
}
