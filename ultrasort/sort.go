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

import "golang.org/x/exp/constraints"

// DefaultThreshold is the span size used by the "combined" benchmark mode.
const DefaultThreshold = 20

// Sort sorts data in-place in ascending order.
//
// Spans of threshold elements or fewer are insertion-sorted; larger spans are
// split at the midpoint, sorted recursively and merged. A threshold below 1 is
// treated as 1, which makes Sort a pure merge sort.
func Sort[T constraints.Ordered](data []T, threshold int) {
	n := len(data)
	if n <= 1 {
		return
	}
	threshold = max(threshold, 1)

	// Small inputs never reach merge, skip the scratch buffer.
	if n <= threshold {
		InsertionSort(data)
		return
	}

	buf := make([]T, n)
	sortImpl(data, buf, threshold)
}

// MergeSort sorts data with threshold 1, i.e. without insertion sort.
func MergeSort[T constraints.Ordered](data []T) {
	Sort(data, 1)
}

// sortImpl is the recursive implementation of Sort. buf must be at least
// as long as data.
func sortImpl[T constraints.Ordered](data, buf []T, threshold int) {
	n := len(data)
	if n <= threshold {
		InsertionSort(data)
		return
	}

	mid := n / 2
	sortImpl(data[:mid], buf[:mid], threshold)
	sortImpl(data[mid:], buf[mid:], threshold)

	// Halves already in order, nothing to merge.
	if data[mid-1] <= data[mid] {
		return
	}
	merge(data, mid, buf)
}

// merge combines the sorted runs data[:mid] and data[mid:].
// On ties the left run wins, which keeps the sort stable.
func merge[T constraints.Ordered](data []T, mid int, buf []T) {
	tmp := buf[:len(data)]
	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		if data[j] < data[i] {
			tmp[k] = data[j]
			j++
		} else {
			tmp[k] = data[i]
			i++
		}
		k++
	}
	k += copy(tmp[k:], data[i:mid])
	copy(tmp[k:], data[j:])
	copy(data, tmp)
}

// InsertionSort is insertion sort for small arrays.
func InsertionSort[T constraints.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
