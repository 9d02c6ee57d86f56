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

// Package geometry estimates the area of the intersection of circles by
// Monte-Carlo sampling and compares it with the closed-form value for the
// three-circle configuration returned by DefaultCircles.
package geometry

import (
	"math"

	"github.com/samber/lo"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Circle is a closed disk.
type Circle struct {
	Center Point
	R      float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.R
}

// Bounds returns the axis-aligned square enclosing c.
func (c Circle) Bounds() Rectangle {
	return Rectangle{
		Min: Point{c.Center.X - c.R, c.Center.Y - c.R},
		Max: Point{c.Center.X + c.R, c.Center.Y + c.R},
	}
}

// Rectangle is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
type Rectangle struct {
	Min, Max Point
}

func (r Rectangle) Width() float64 { return r.Max.X - r.Min.X }
func (r Rectangle) Height() float64 { return r.Max.Y - r.Min.Y }

// Area returns Width * Height.
func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// Valid reports whether the corners are ordered and finite.
func (r Rectangle) Valid() bool {
	for _, v := range []float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Max.X >= r.Min.X && r.Max.Y >= r.Min.Y
}

// Contains reports whether p lies inside or on the border of r.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Bounds returns the smallest rectangle covering every circle.
// It returns the zero Rectangle when circles is empty.
func Bounds(circles ...Circle) Rectangle {
	if len(circles) == 0 {
		return Rectangle{}
	}
	boxes := lo.Map(circles, func(c Circle, _ int) Rectangle { return c.Bounds() })
	return Rectangle{
		Min: Point{
			X: lo.Min(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Min.X })),
			Y: lo.Min(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Min.Y })),
		},
		Max: Point{
			X: lo.Max(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Max.X })),
			Y: lo.Max(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Max.Y })),
		},
	}
}

// IntersectionBounds returns the overlap of the circles' bounding boxes,
// which contains the intersection of the circles. The result is not Valid
// when the boxes do not overlap.
func IntersectionBounds(circles ...Circle) Rectangle {
	if len(circles) == 0 {
		return Rectangle{}
	}
	boxes := lo.Map(circles, func(c Circle, _ int) Rectangle { return c.Bounds() })
	return Rectangle{
		Min: Point{
			X: lo.Max(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Min.X })),
			Y: lo.Max(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Min.Y })),
		},
		Max: Point{
			X: lo.Min(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Max.X })),
			Y: lo.Min(lo.Map(boxes, func(b Rectangle, _ int) float64 { return b.Max.Y })),
		},
	}
}
