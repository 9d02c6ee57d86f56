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
	"math"
	"math/rand/v2"
)

var (
	// ErrNoSamples is returned when a non-positive sample count is requested.
	ErrNoSamples = errors.New("geometry: sample count must be positive")

	// ErrInvalidRect is returned for rectangles that are not Valid.
	ErrInvalidRect = errors.New("geometry: invalid rectangle")

	// ErrNoCircles is returned when no circles are given.
	ErrNoCircles = errors.New("geometry: no circles")
)

var sqrt5Half = math.Sqrt(5) / 2

// Analytic is the exact area of the intersection of DefaultCircles.
func Analytic() float64 {
	return 0.25*math.Pi + 1.25*math.Asin(0.8) - 1
}

// DefaultCircles returns the three circles of the experiment.
func DefaultCircles() []Circle {
	return []Circle{
		{Center: Point{1, 1}, R: 1},
		{Center: Point{1.5, 2}, R: sqrt5Half},
		{Center: Point{2, 1.5}, R: sqrt5Half},
	}
}

// LargeRect covers all of DefaultCircles.
func LargeRect() Rectangle {
	return Rectangle{Min: Point{0, 0}, Max: Point{2 + sqrt5Half, 2 + sqrt5Half}}
}

// SmallRect covers only the central overlap of DefaultCircles.
func SmallRect() Rectangle {
	return Rectangle{Min: Point{0.8, 0.8}, Max: Point{2.1, 2.1}}
}

// Estimate draws n points uniformly from bounds and scales the fraction that
// lies inside every circle by the area of bounds.
func Estimate(rng *rand.Rand, circles []Circle, bounds Rectangle, n int) (float64, error) {
	switch {
	case n <= 0:
		return 0, fmt.Errorf("%w: %d", ErrNoSamples, n)
	case len(circles) == 0:
		return 0, ErrNoCircles
	case !bounds.Valid():
		return 0, fmt.Errorf("%w: %+v", ErrInvalidRect, bounds)
	}

	w, h := bounds.Width(), bounds.Height()
	inside := 0
	for range n {
		p := Point{
			X: bounds.Min.X + rng.Float64()*w,
			Y: bounds.Min.Y + rng.Float64()*h,
		}
		if insideAll(circles, p) {
			inside++
		}
	}
	return float64(inside) / float64(n) * bounds.Area(), nil
}

func insideAll(circles []Circle, p Point) bool {
	for _, c := range circles {
		if !c.Contains(p) {
			return false
		}
	}
	return true
}
