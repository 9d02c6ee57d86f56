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

// Package arraygen generates integer arrays of different shapes for sorting
// benchmarks. All randomness comes from an explicitly passed generator, so a
// seeded Generator always produces the same arrays.
package arraygen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// MaxValue is the exclusive upper bound of generated values.
const MaxValue = 6000

var (
	// ErrNegativeSize is returned when a negative length is requested.
	ErrNegativeSize = errors.New("arraygen: negative size")

	// ErrUnknownShape is returned for shapes outside AllShapes.
	ErrUnknownShape = errors.New("arraygen: unknown shape")
)

// Generator produces arrays with values uniform in [0, MaxValue).
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return NewFromRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewFromRand wraps an existing source of randomness.
func NewFromRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate dispatches to the method for shape.
func (g *Generator) Generate(shape Shape, n int) ([]int, error) {
	switch shape {
	case Random:
		return g.Random(n)
	case Reversed:
		return g.Reversed(n)
	case AlmostSorted:
		return g.AlmostSorted(n)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
}

// Random returns n independent draws.
func (g *Generator) Random(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	res := make([]int, n)
	for i := range res {
		res[i] = g.rng.IntN(MaxValue)
	}
	return res, nil
}

// Reversed returns n random draws in non-increasing order.
func (g *Generator) Reversed(n int) ([]int, error) {
	res, err := g.Random(n)
	if err != nil {
		return nil, err
	}
	slices.Sort(res)
	slices.Reverse(res)
	return res, nil
}

// AlmostSorted returns n random draws in ascending order after up to
// floor(sqrt(n)) swaps of random index pairs.
func (g *Generator) AlmostSorted(n int) ([]int, error) {
	res, err := g.Random(n)
	if err != nil {
		return nil, err
	}
	slices.Sort(res)
	g.perturb(res)
	return res, nil
}

// perturb applies a uniform number of swaps in [0, MaxSwaps(len(data))] and
// returns how many it made.
func (g *Generator) perturb(data []int) int {
	n := len(data)
	if n == 0 {
		return 0
	}
	swaps := g.rng.IntN(MaxSwaps(n) + 1)
	for range swaps {
		i, j := g.rng.IntN(n), g.rng.IntN(n)
		data[i], data[j] = data[j], data[i]
	}
	return swaps
}

// MaxSwaps is the largest number of swaps AlmostSorted applies to an array
// of length n.
func MaxSwaps(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(n)))
}
