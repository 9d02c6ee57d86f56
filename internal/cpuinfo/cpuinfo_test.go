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

package cpuinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	got := Describe()
	if !strings.HasPrefix(got, runtime.GOARCH+" cpus=") {
		t.Errorf("Describe() = %q, want prefix %q", got, runtime.GOARCH+" cpus=")
	}
	if !strings.Contains(got, " features=") {
		t.Errorf("Describe() = %q, missing features", got)
	}
	for _, f := range Features() {
		if f.Present && !strings.Contains(got, f.Name) {
			t.Errorf("Describe() = %q, missing present feature %q", got, f.Name)
		}
	}
}
