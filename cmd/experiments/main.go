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

// Command experiments runs the sorting benchmark and the three-circle
// Monte-Carlo estimator.
//
// Usage:
//
//	experiments sortbench -o res2.csv              # time ultrasort, write records
//	experiments circles --workers 4 > circles.txt  # Monte-Carlo sweep
//	experiments report res2.csv                    # mean timing per tag and length
//
// Seeds come from --seed, then EXPERIMENTS_SEED, then a random value that is
// logged so the run can be repeated.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
