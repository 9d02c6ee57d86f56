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

package arraygen

import (
	"fmt"
	"strings"
)

// Shape selects how a generated array is laid out.
type Shape int

const (
	// Random is n independent uniform draws.
	Random Shape = iota

	// Reversed is a descending sequence.
	Reversed

	// AlmostSorted is an ascending sequence perturbed by a few random swaps.
	AlmostSorted
)

// AllShapes lists the shapes in benchmark order.
var AllShapes = []Shape{Random, Reversed, AlmostSorted}

// String returns the name used in benchmark tags.
func (s Shape) String() string {
	switch s {
	case Random:
		return "random"
	case Reversed:
		return "reversed"
	case AlmostSorted:
		return "almost_sorted"
	default:
		return "unknown"
	}
}

// ParseShape is the inverse of Shape.String. Matching ignores case and
// surrounding whitespace.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return Random, nil
	case "reversed":
		return Reversed, nil
	case "almost_sorted":
		return AlmostSorted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// ParseShapes parses a comma-separated list of shape names.
func ParseShapes(s string) ([]Shape, error) {
	var shapes []Shape
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		shape, err := ParseShape(part)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}
