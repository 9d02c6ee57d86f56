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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-experiments/arraygen"
)

func smallConfig() Config {
	return Config{
		Modes:     DefaultModes,
		Shapes:    arraygen.AllShapes,
		Attempts:  2,
		ArraySize: 300,
		MinLength: 100,
		Step:      100,
	}
}

func TestRunnerEmitsEveryCombination(t *testing.T) {
	r, err := NewRunner(smallConfig(), arraygen.New(1))
	require.NoError(t, err)

	var attempts int
	r.OnAttempt = func(Mode, int) { attempts++ }

	var records []Record
	require.NoError(t, r.Run(func(rec Record) error {
		records = append(records, rec)
		return nil
	}))

	// 2 modes * 2 attempts * 3 shapes * 3 lengths
	require.Len(t, records, 36)
	assert.Equal(t, 4, attempts)

	first := records[0]
	assert.Equal(t, "combined random", first.Tag())
	assert.Equal(t, 100, first.Length)
	assert.GreaterOrEqual(t, int64(first.Elapsed), int64(0))

	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.Tag()]++
		assert.Contains(t, []int{100, 200, 300}, rec.Length)
	}
	assert.Equal(t, map[string]int{
		"combined random":        6,
		"combined reversed":      6,
		"combined almost_sorted": 6,
		"default random":         6,
		"default reversed":       6,
		"default almost_sorted":  6,
	}, counts)

	last := records[len(records)-1]
	assert.Equal(t, "default almost_sorted", last.Tag())
	assert.Equal(t, 300, last.Length)
}

func TestRunnerStopsOnEmitError(t *testing.T) {
	r, err := NewRunner(smallConfig(), arraygen.New(2))
	require.NoError(t, err)

	boom := errors.New("disk full")
	calls := 0
	err = r.Run(func(Record) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Modes = []Mode{{"broken", 0}}
	_, err := NewRunner(cfg, arraygen.New(3))
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestTimeSortSortsCopy(t *testing.T) {
	src := []int{5, 3, 3, 1, 2}
	dst := make([]int, len(src))
	timeSort(dst, src, 3)
	assert.Equal(t, []int{1, 2, 3, 3, 5}, dst)
	assert.Equal(t, []int{5, 3, 3, 1, 2}, src, "source must stay untouched")
}
