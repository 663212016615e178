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

// Command msortviz sorts arrays with the instrumented merge sort and prints
// the result, the step-by-step trace and performance counters.
//
// Usage:
//
//	msortviz sort 64 34 25 12 22 11 90
//	msortviz sort --pattern nearly-sorted --size 30 --steps
//	msortviz sort --fixture duplicates --format json
//	msortviz bench --sizes 10,100,1000 --patterns random,reversed
//	msortviz complexity --format yaml
//
// Defaults can be kept in a YAML file passed with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
