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

package msort

// Statistics is the counter snapshot of an instrumented run.
type Statistics struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Accesses    int `json:"array_accesses" yaml:"array_accesses"`
	Steps       int `json:"steps" yaml:"steps"`
}

// Complexity describes the asymptotic behavior of merge sort.
// It does not depend on any run.
type Complexity struct {
	TimeComplexity   string `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity  string `json:"space_complexity" yaml:"space_complexity"`
	TimeExplanation  string `json:"time_explanation" yaml:"time_explanation"`
	SpaceExplanation string `json:"space_explanation" yaml:"space_explanation"`
	BestCase         string `json:"best_case" yaml:"best_case"`
	AverageCase      string `json:"average_case" yaml:"average_case"`
	WorstCase        string `json:"worst_case" yaml:"worst_case"`
	Stable           bool   `json:"stable" yaml:"stable"`
	InPlace          bool   `json:"in_place" yaml:"in_place"`
}

// ComplexityInfo returns the complexity descriptor of merge sort.
func ComplexityInfo() Complexity {
	return Complexity{
		TimeComplexity:   "O(n log n)",
		SpaceComplexity:  "O(n)",
		TimeExplanation:  "The array is recursively divided log n times, and each level requires O(n) operations to merge.",
		SpaceExplanation: "Additional space is needed for temporary arrays during the merge process.",
		BestCase:         "O(n log n)",
		AverageCase:      "O(n log n)",
		WorstCase:        "O(n log n)",
		Stable:           true,
		InPlace:          false,
	}
}
