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

package ultrasort

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

var thresholds = []int{0, 1, 2, 3, 7, 20, 64}

func randomInts(rng *rand.Rand, n, bound int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(bound)
	}
	return data
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, th := range thresholds {
		var empty []int
		Sort(empty, th)
		if len(empty) != 0 {
			t.Errorf("Sort(empty, %d) should not modify empty slice", th)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	data := []int{42}
	Sort(data, DefaultThreshold)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

func TestSortScenario(t *testing.T) {
	want := []int{1, 2, 3, 3, 5}
	for _, th := range []int{1, 3} {
		data := []int{5, 3, 3, 1, 2}
		Sort(data, th)
		if diff := gocmp.Diff(want, data); diff != "" {
			t.Errorf("Sort(threshold=%d) mismatch (-want +got):\n%s", th, diff)
		}
	}
}

func TestSortShapes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	shapes := map[string]func(n int) []int{
		"sorted": func(n int) []int {
			data := randomInts(rng, n, 6000)
			slices.Sort(data)
			return data
		},
		"reverse": func(n int) []int {
			data := randomInts(rng, n, 6000)
			slices.Sort(data)
			slices.Reverse(data)
			return data
		},
		"duplicates": func(n int) []int { return randomInts(rng, n, 4) },
		"allSame": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = 7
			}
			return data
		},
		"random": func(n int) []int { return randomInts(rng, n, 6000) },
	}

	sizes := []int{0, 1, 2, 3, 7, 19, 20, 21, 40, 63, 64, 100, 1000}
	for name, gen := range shapes {
		for _, n := range sizes {
			for _, th := range thresholds {
				data := gen(n)
				want := slices.Clone(data)
				slices.Sort(want)

				Sort(data, th)
				if !IsSorted(data) {
					t.Fatalf("Sort(%s, n=%d, threshold=%d) produced unsorted result", name, n, th)
				}
				if diff := gocmp.Diff(want, data); diff != "" {
					t.Fatalf("Sort(%s, n=%d, threshold=%d) is not a permutation of its input (-want +got):\n%s",
						name, n, th, diff)
				}
			}
		}
	}
}

func TestSortThresholdsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{10, 500, 10000} {
		data := randomInts(rng, n, 6000)
		combined := slices.Clone(data)
		plain := slices.Clone(data)

		Sort(combined, 20)
		MergeSort(plain)

		if diff := gocmp.Diff(plain, combined); diff != "" {
			t.Errorf("n=%d: threshold 20 and threshold 1 disagree (-merge +combined):\n%s", n, diff)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	data := randomInts(rng, 777, 100)
	Sort(data, DefaultThreshold)
	once := slices.Clone(data)
	Sort(data, DefaultThreshold)
	if diff := gocmp.Diff(once, data); diff != "" {
		t.Errorf("sorting a sorted slice changed it (-first +second):\n%s", diff)
	}
}

func TestSortFloat64(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	data := make([]float64, 300)
	for i := range data {
		data[i] = rng.Float64()*1000 - 500
	}
	Sort(data, 5)
	if !IsSorted(data) {
		t.Errorf("Sort(random float64) produced unsorted result")
	}
}

func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "banana", "apple", "cherry"}
	Sort(data, 2)
	want := []string{"apple", "apple", "banana", "cherry", "fig", "pear"}
	if diff := gocmp.Diff(want, data); diff != "" {
		t.Errorf("Sort(strings) mismatch (-want +got):\n%s", diff)
	}
}

type keyed struct {
	Key   int
	Order int
}

func TestSortFuncStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, th := range thresholds {
		data := make([]keyed, 2000)
		for i := range data {
			data[i] = keyed{Key: rng.IntN(16), Order: i}
		}
		want := slices.Clone(data)
		slices.SortStableFunc(want, func(a, b keyed) int { return cmp.Compare(a.Key, b.Key) })

		SortFunc(data, th, func(a, b keyed) int { return cmp.Compare(a.Key, b.Key) })
		if diff := gocmp.Diff(want, data); diff != "" {
			t.Fatalf("SortFunc(threshold=%d) is not stable (-want +got):\n%s", th, diff)
		}
	}
}

func TestInsertionSort(t *testing.T) {
	data := []int{4, 2, 9, 1, 1, 0}
	InsertionSort(data)
	if diff := gocmp.Diff([]int{0, 1, 1, 2, 4, 9}, data); diff != "" {
		t.Errorf("InsertionSort mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
		{[]int{1, 3, 2, 4}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
