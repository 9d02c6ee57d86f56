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

package bench

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-experiments/arraygen"
	"github.com/ajroetker/go-experiments/ultrasort"
)

// Record is one timed sort of a prefix.
type Record struct {
	Length  int
	Mode    string
	Shape   arraygen.Shape
	Elapsed time.Duration
}

// Tag returns "<mode> <shape>", e.g. "combined random".
func (r Record) Tag() string {
	return r.Mode + " " + r.Shape.String()
}

// Runner executes a Config. Runs are sequential so timings do not interfere.
type Runner struct {
	cfg Config
	gen *arraygen.Generator

	// OnAttempt, when set, is called before each attempt of each mode.
	OnAttempt func(mode Mode, attempt int)
}

// NewRunner validates cfg and binds it to gen.
func NewRunner(cfg Config, gen *arraygen.Generator) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, gen: gen}, nil
}

// Run times every (mode, attempt, shape, length) combination and passes each
// record to emit. It stops at the first error.
func (r *Runner) Run(emit func(Record) error) error {
	lengths := r.cfg.Lengths()
	// One scratch array per run, sized for the longest prefix.
	scratch := make([]int, r.cfg.ArraySize)

	for _, mode := range r.cfg.Modes {
		for attempt := range r.cfg.Attempts {
			if r.OnAttempt != nil {
				r.OnAttempt(mode, attempt)
			}
			for _, shape := range r.cfg.Shapes {
				arr, err := r.gen.Generate(shape, r.cfg.ArraySize)
				if err != nil {
					return fmt.Errorf("generating %s array: %w", shape, err)
				}
				for _, n := range lengths {
					rec := Record{
						Length:  n,
						Mode:    mode.Name,
						Shape:   shape,
						Elapsed: timeSort(scratch[:n], arr[:n], mode.Threshold),
					}
					if err := emit(rec); err != nil {
						return fmt.Errorf("emitting %q at length %d: %w", rec.Tag(), n, err)
					}
				}
			}
		}
	}
	return nil
}

// timeSort copies src into dst and measures sorting dst.
func timeSort(dst, src []int, threshold int) time.Duration {
	copy(dst, src)
	start := time.Now()
	ultrasort.Sort(dst, threshold)
	return time.Since(start)
}
