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

package sample

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"random", Random},
		{"Sorted", Sorted},
		{"reversed", Reversed},
		{"nearly-sorted", NearlySorted},
		{"nearly_sorted", NearlySorted},
		{" duplicates ", ManyDuplicates},
	}
	for _, tt := range tests {
		got, err := ParsePattern(tt.in)
		if err != nil {
			t.Errorf("ParsePattern(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParsePattern("zigzag"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("ParsePattern(zigzag) error = %v, want ErrUnknownPattern", err)
	}
	for _, p := range Patterns() {
		back, err := ParsePattern(p.String())
		if err != nil || back != p {
			t.Errorf("ParsePattern(%q) = %v, %v", p.String(), back, err)
		}
	}
}

func TestGenerateShapes(t *testing.T) {
	g := New(1)

	sorted, err := g.Generate(Sorted, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, sorted); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}

	reversed, err := g.Generate(Reversed, 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, reversed); diff != "" {
		t.Errorf("Reversed mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRanges(t *testing.T) {
	g := New(2)
	for _, size := range []int{1, 10, 100, 1000} {
		random, err := g.Generate(Random, size)
		if err != nil {
			t.Fatal(err)
		}
		if len(random) != size {
			t.Errorf("Random len = %d, want %d", len(random), size)
		}
		for _, v := range random {
			if v < 1 || v > 100 {
				t.Errorf("Random value %d outside [1, 100]", v)
			}
		}

		dups, err := g.Generate(ManyDuplicates, size)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range dups {
			if v < 1 || v > size/3+1 {
				t.Errorf("ManyDuplicates(size=%d) value %d outside [1, %d]", size, v, size/3+1)
			}
		}
	}
}

func TestGenerateNearlySortedIsPermutation(t *testing.T) {
	g := New(3)
	for _, size := range []int{1, 2, 10, 100} {
		data, err := g.Generate(NearlySorted, size)
		if err != nil {
			t.Fatal(err)
		}
		got := slices.Clone(data)
		slices.Sort(got)
		want, _ := g.Generate(Sorted, size)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("NearlySorted(size=%d) is not a permutation of 1..n (-want +got):\n%s", size, diff)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, p := range Patterns() {
		a, err := New(99).Generate(p, 50)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := New(99).Generate(p, 50)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%v: same seed produced different data (-first +second):\n%s", p, diff)
		}
	}
}

func TestGenerateEdgeSizes(t *testing.T) {
	g := New(4)
	for _, p := range Patterns() {
		data, err := g.Generate(p, 0)
		if err != nil {
			t.Errorf("%v: Generate(0) error = %v", p, err)
		}
		if len(data) != 0 {
			t.Errorf("%v: Generate(0) = %v, want empty", p, data)
		}
		if _, err := g.Generate(p, -1); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%v: Generate(-1) error = %v, want ErrInvalidSize", p, err)
		}
	}
	if _, err := g.Generate(Pattern(42), 3); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Generate(Pattern(42)) error = %v, want ErrUnknownPattern", err)
	}
}

func TestFixtures(t *testing.T) {
	want := []string{
		"already_sorted", "duplicates", "empty", "random_medium",
		"random_small", "reverse_sorted", "single_element", "two_elements",
	}
	if diff := cmp.Diff(want, FixtureNames()); diff != "" {
		t.Errorf("FixtureNames() mismatch (-want +got):\n%s", diff)
	}

	f := Fixtures()
	if len(f["empty"]) != 0 || len(f["single_element"]) != 1 || len(f["two_elements"]) != 2 {
		t.Errorf("unexpected fixture sizes: %v", f)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, f["already_sorted"]); diff != "" {
		t.Errorf("already_sorted mismatch (-want +got):\n%s", diff)
	}
	if len(f["random_medium"]) != 15 {
		t.Errorf("random_medium len = %d, want 15", len(f["random_medium"]))
	}
	if diff := cmp.Diff(f["random_medium"], Fixtures()["random_medium"]); diff != "" {
		t.Errorf("random_medium is not stable across calls:\n%s", diff)
	}

	small, err := Fixture("random_small")
	if err != nil {
		t.Fatal(err)
	}
	small[0] = 0
	if again, _ := Fixture("random_small"); again[0] != 64 {
		t.Errorf("Fixture returned shared storage")
	}
	if _, err := Fixture("nope"); !errors.Is(err, ErrUnknownFixture) {
		t.Errorf("Fixture(nope) error = %v, want ErrUnknownFixture", err)
	}
}

func TestPatternText(t *testing.T) {
	text, err := NearlySorted.MarshalText()
	if err != nil || string(text) != "nearly-sorted" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	var p Pattern
	if err := p.UnmarshalText([]byte("reversed")); err != nil || p != Reversed {
		t.Errorf("UnmarshalText(reversed) = %v, %v", p, err)
	}
	if _, err := Pattern(-1).MarshalText(); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("MarshalText(-1) error = %v, want ErrUnknownPattern", err)
	}
}
