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

// Package sample generates input arrays for demonstrations and benchmarks.
//
// Generators are seeded, so the same seed, pattern and size always produce
// the same array.
package sample

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrUnknownPattern is returned by ParsePattern for unrecognized names.
	ErrUnknownPattern = errors.New("sample: unknown pattern")

	// ErrInvalidSize is returned for negative sizes.
	ErrInvalidSize = errors.New("sample: invalid size")

	// ErrUnknownFixture is returned by Fixture for unrecognized names.
	ErrUnknownFixture = errors.New("sample: unknown fixture")
)

// Pattern selects the shape of a generated array.
type Pattern int

const (
	// Random draws values uniformly from [1, 100].
	Random Pattern = iota

	// Sorted is 1..n.
	Sorted

	// Reversed is n..1.
	Reversed

	// NearlySorted is 1..n with max(1, n/10) random pair swaps.
	NearlySorted

	// ManyDuplicates draws values uniformly from [1, n/3+1].
	ManyDuplicates
)

var patternNames = [...]string{
	Random:         "random",
	Sorted:         "sorted",
	Reversed:       "reversed",
	NearlySorted:   "nearly-sorted",
	ManyDuplicates: "duplicates",
}

// String returns the name accepted by ParsePattern.
func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(patternNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPattern, int(p))
	}
	return []byte(patternNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	v, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, NearlySorted, ManyDuplicates}
}

// ParsePattern converts a name such as "nearly-sorted" into a Pattern.
// Matching ignores case and accepts '_' in place of '-'.
func ParsePattern(name string) (Pattern, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range patternNames {
		if n == key {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPattern, name, strings.Join(patternNames[:], ", "))
}

// Generator produces sample arrays from a deterministic random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns a new array of the given pattern and size.
func (g *Generator) Generate(p Pattern, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	switch p {
	case Random:
		return g.uniform(size, 100), nil
	case Sorted:
		return lo.RangeFrom(1, size), nil
	case Reversed:
		return lo.Times(size, func(i int) int { return size - i }), nil
	case NearlySorted:
		data := lo.RangeFrom(1, size)
		if size == 0 {
			return data, nil
		}
		for range max(1, size/10) {
			i, j := g.rng.IntN(size), g.rng.IntN(size)
			data[i], data[j] = data[j], data[i]
		}
		return data, nil
	case ManyDuplicates:
		return g.uniform(size, size/3+1), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPattern, p)
	}
}

// uniform draws size values from [1, hi].
func (g *Generator) uniform(size, hi int) []int {
	return lo.Times(size, func(int) int { return 1 + g.rng.IntN(hi) })
}

// mediumSeed fixes the contents of the "random_medium" fixture.
const mediumSeed = 15

// Fixtures returns the named reference inputs used by tests and demos.
// Each call returns fresh slices.
func Fixtures() map[string][]int {
	medium, _ := New(mediumSeed).Generate(Random, 15)
	return map[string][]int{
		"random_small":   {64, 34, 25, 12, 22, 11, 90},
		"random_medium":  medium,
		"already_sorted": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		"reverse_sorted": {10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates":     {5, 2, 8, 2, 9, 1, 5, 5},
		"single_element": {42},
		"empty":          {},
		"two_elements":   {3, 1},
	}
}

// FixtureNames returns the fixture names in sorted order.
func FixtureNames() []string {
	names := lo.Keys(Fixtures())
	slices.Sort(names)
	return names
}

// Fixture returns a single named fixture.
func Fixture(name string) ([]int, error) {
	data, ok := Fixtures()[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFixture, name, strings.Join(FixtureNames(), ", "))
	}
	return data, nil
}
