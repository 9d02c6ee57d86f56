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

package geometry

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/ajroetker/go-experiments/internal/workerpool"
)

// ErrInvalidSweep is returned by SweepConfig.Validate.
var ErrInvalidSweep = errors.New("geometry: invalid sweep")

// SweepConfig controls Sweep.
type SweepConfig struct {
	Seed uint64

	// Sample counts are MinSamples, MinSamples+Step, ... below MaxSamples.
	MinSamples int
	MaxSamples int
	Step       int

	// Workers is the number of rows estimated concurrently. Values below 2
	// keep the sweep on the calling goroutine.
	Workers int

	Circles []Circle
	Large   Rectangle
	Small   Rectangle
}

// DefaultSweepConfig sweeps 100, 600, ... 99600 samples over LargeRect and
// SmallRect on a single worker.
func DefaultSweepConfig(seed uint64) SweepConfig {
	return SweepConfig{
		Seed:       seed,
		MinSamples: 100,
		MaxSamples: 100000,
		Step:       500,
		Workers:    1,
		Circles:    DefaultCircles(),
		Large:      LargeRect(),
		Small:      SmallRect(),
	}
}

// Validate reports the first problem with c.
func (c SweepConfig) Validate() error {
	switch {
	case c.MinSamples <= 0:
		return fmt.Errorf("%w: %w: min samples %d", ErrInvalidSweep, ErrNoSamples, c.MinSamples)
	case c.MaxSamples <= c.MinSamples:
		return fmt.Errorf("%w: max samples %d must exceed min samples %d", ErrInvalidSweep, c.MaxSamples, c.MinSamples)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSweep, c.Step)
	case len(c.Circles) == 0:
		return fmt.Errorf("%w: %w", ErrInvalidSweep, ErrNoCircles)
	case !c.Large.Valid() || !c.Small.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidSweep, ErrInvalidRect)
	}
	return nil
}

// SampleCounts returns the sample count of every row.
func (c SweepConfig) SampleCounts() []int {
	var counts []int
	for n := c.MinSamples; n < c.MaxSamples; n += c.Step {
		counts = append(counts, n)
	}
	return counts
}

// Row is one line of sweep output.
type Row struct {
	Samples int
	Large   float64
	Small   float64
}

// Sweep estimates the intersection area over both rectangles for every
// sample count. Row i draws from a generator seeded with (Seed, i), so the
// output depends only on the config, not on Workers.
func Sweep(cfg SweepConfig) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	counts := cfg.SampleCounts()
	rows := make([]Row, len(counts))
	errs := make([]error, len(counts))

	pool := workerpool.New(max(cfg.Workers, 1))
	defer pool.Close()

	pool.Each(len(counts), func(i int) {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
		n := counts[i]
		large, err := Estimate(rng, cfg.Circles, cfg.Large, n)
		if err != nil {
			errs[i] = err
			return
		}
		small, err := Estimate(rng, cfg.Circles, cfg.Small, n)
		if err != nil {
			errs[i] = err
			return
		}
		rows[i] = Row{Samples: n, Large: large, Small: small}
	})

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteRows prints "<n> <estimate_large> <estimate_small>" lines.
func WriteRows(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d %g %g\n", r.Samples, r.Large, r.Small); err != nil {
			return err
		}
	}
	return nil
}
