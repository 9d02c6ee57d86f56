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
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Summary is the mean timing of one tag at one prefix length.
type Summary struct {
	Tag     string
	Length  int
	Samples int
	Mean    time.Duration
}

type summaryKey struct {
	tag    string
	length int
}

// Summarize averages records per (tag, length), ordered by tag then length.
func Summarize(records []Record) []Summary {
	groups := lo.GroupBy(records, func(r Record) summaryKey {
		return summaryKey{tag: r.Tag(), length: r.Length}
	})

	summaries := lo.MapToSlice(groups, func(k summaryKey, rs []Record) Summary {
		total := lo.SumBy(rs, func(r Record) time.Duration { return r.Elapsed })
		return Summary{
			Tag:     k.tag,
			Length:  k.length,
			Samples: len(rs),
			Mean:    total / time.Duration(len(rs)),
		}
	})

	slices.SortFunc(summaries, func(a, b Summary) int {
		if c := cmp.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return cmp.Compare(a.Length, b.Length)
	})
	return summaries
}

// WriteSummaries prints "<tag> <length> <mean_us> <samples>" lines.
func WriteSummaries(w io.Writer, summaries []Summary) error {
	for _, s := range summaries {
		mean := float64(s.Mean) / float64(time.Microsecond)
		if _, err := fmt.Fprintf(w, "%s %d %.1f %d\n", s.Tag, s.Length, mean, s.Samples); err != nil {
			return err
		}
	}
	return nil
}
