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

// Package cpuinfo describes the host CPU for benchmark logs, so timing files
// can be matched to the machine that produced them.
package cpuinfo

import (
	"runtime"
	"strconv"
	"strings"
)

// Feature is a named CPU capability.
type Feature struct {
	Name    string
	Present bool
}

// Features returns the capabilities detected for the current architecture.
// Set by the cpuinfo_*.go files.
func Features() []Feature {
	return detectFeatures()
}

// Describe returns a one-line summary such as
// "amd64 cpus=8 features=sse42,avx,avx2,fma".
func Describe() string {
	var present []string
	for _, f := range Features() {
		if f.Present {
			present = append(present, f.Name)
		}
	}

	var b strings.Builder
	b.WriteString(runtime.GOARCH)
	b.WriteString(" cpus=")
	b.WriteString(strconv.Itoa(runtime.NumCPU()))
	b.WriteString(" features=")
	if len(present) == 0 {
		b.WriteString("none")
	} else {
		b.WriteString(strings.Join(present, ","))
	}
	return b.String()
}
