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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Point{0, 0}.Distance(Point{3, 4}), 1e-12)
	assert.Zero(t, Point{1, 2}.Distance(Point{1, 2}))
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Point{1, 1}, R: 1}
	assert.True(t, c.Contains(Point{1, 1}))
	assert.True(t, c.Contains(Point{2, 1}), "boundary is inside")
	assert.False(t, c.Contains(Point{2, 2}))
}

func TestRectangle(t *testing.T) {
	r := Rectangle{Min: Point{0.8, 0.8}, Max: Point{2.1, 2.1}}
	assert.InDelta(t, 1.69, r.Area(), 1e-12)
	assert.True(t, r.Valid())
	assert.True(t, r.Contains(Point{1, 2}))
	assert.False(t, r.Contains(Point{0, 2}))

	assert.False(t, Rectangle{Min: Point{1, 0}, Max: Point{0, 1}}.Valid())
	assert.False(t, Rectangle{Max: Point{math.Inf(1), 1}}.Valid())
	assert.True(t, Rectangle{}.Valid(), "degenerate rectangle is valid with zero area")
}

func TestBounds(t *testing.T) {
	got := Bounds(DefaultCircles()...)
	want := LargeRect()
	assert.InDelta(t, want.Min.X, got.Min.X, 1e-12)
	assert.InDelta(t, want.Min.Y, got.Min.Y, 1e-12)
	assert.InDelta(t, want.Max.X, got.Max.X, 1e-12)
	assert.InDelta(t, want.Max.Y, got.Max.Y, 1e-12)

	assert.Equal(t, Rectangle{}, Bounds())
}

func TestIntersectionBounds(t *testing.T) {
	got := IntersectionBounds(DefaultCircles()...)
	low := 2 - math.Sqrt(5)/2
	assert.InDelta(t, low, got.Min.X, 1e-12)
	assert.InDelta(t, low, got.Min.Y, 1e-12)
	assert.InDelta(t, 2.0, got.Max.X, 1e-12)
	assert.InDelta(t, 2.0, got.Max.Y, 1e-12)

	small := SmallRect()
	assert.True(t, small.Contains(got.Min) && small.Contains(got.Max),
		"the small rectangle must cover the whole overlap")

	apart := IntersectionBounds(
		Circle{Center: Point{0, 0}, R: 1},
		Circle{Center: Point{5, 5}, R: 1},
	)
	assert.False(t, apart.Valid())
}
