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

// SortFunc sorts data in-place using cmp, which returns a negative number
// when a < b, zero when equal and a positive number when a > b.
// It uses the same algorithm as Sort and is stable.
func SortFunc[T any](data []T, threshold int, cmp func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}
	threshold = max(threshold, 1)

	if n <= threshold {
		insertionSortFunc(data, cmp)
		return
	}

	buf := make([]T, n)
	sortFuncImpl(data, buf, threshold, cmp)
}

func sortFuncImpl[T any](data, buf []T, threshold int, cmp func(a, b T) int) {
	n := len(data)
	if n <= threshold {
		insertionSortFunc(data, cmp)
		return
	}

	mid := n / 2
	sortFuncImpl(data[:mid], buf[:mid], threshold, cmp)
	sortFuncImpl(data[mid:], buf[mid:], threshold, cmp)

	if cmp(data[mid-1], data[mid]) <= 0 {
		return
	}
	mergeFunc(data, mid, buf, cmp)
}

func mergeFunc[T any](data []T, mid int, buf []T, cmp func(a, b T) int) {
	tmp := buf[:len(data)]
	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		if cmp(data[j], data[i]) < 0 {
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

func insertionSortFunc[T any](data []T, cmp func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
