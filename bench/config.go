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

// Package bench times ultrasort on generated arrays and reads and writes the
// resulting timing records.
package bench

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ajroetker/go-experiments/arraygen"
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrInvalidThreshold is returned for modes with a threshold below 1.
	ErrInvalidThreshold = errors.New("bench: threshold must be at least 1")
)

// Mode is a labelled sort configuration, e.g. "combined" with threshold 20.
type Mode struct {
	Name      string
	Threshold int
}

// String returns "name:threshold", the form accepted by ParseModes.
func (m Mode) String() string {
	return m.Name + ":" + strconv.Itoa(m.Threshold)
}

// DefaultModes are the hybrid mode and the pure merge sort baseline.
var DefaultModes = []Mode{
	{Name: "combined", Threshold: 20},
	{Name: "default", Threshold: 1},
}

// Config controls a benchmark run.
type Config struct {
	Modes  []Mode
	Shapes []arraygen.Shape

	// Attempts is the number of fresh arrays generated per mode and shape.
	Attempts int

	// ArraySize is the length of each generated array.
	ArraySize int

	// MinLength and Step define the timed prefix lengths:
	// MinLength, MinLength+Step, ... up to ArraySize.
	MinLength int
	Step      int
}

// DefaultConfig runs both DefaultModes on every shape, ten arrays of 10000
// elements each, timing prefixes from 500 in steps of 100.
func DefaultConfig() Config {
	return Config{
		Modes:     slices.Clone(DefaultModes),
		Shapes:    slices.Clone(arraygen.AllShapes),
		Attempts:  10,
		ArraySize: 10000,
		MinLength: 500,
		Step:      100,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if len(c.Modes) == 0 {
		return fmt.Errorf("%w: no modes", ErrInvalidConfig)
	}
	for _, m := range c.Modes {
		if m.Name == "" || strings.ContainsAny(m.Name, " \t\n") {
			return fmt.Errorf("%w: mode name %q must be a single non-empty word", ErrInvalidConfig, m.Name)
		}
		if m.Threshold < 1 {
			return fmt.Errorf("%w: mode %q has threshold %d", ErrInvalidThreshold, m.Name, m.Threshold)
		}
	}
	if len(c.Shapes) == 0 {
		return fmt.Errorf("%w: no shapes", ErrInvalidConfig)
	}
	for _, s := range c.Shapes {
		if s.String() == "unknown" {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, arraygen.ErrUnknownShape, int(s))
		}
	}
	switch {
	case c.Attempts <= 0:
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidConfig, c.Attempts)
	case c.ArraySize < 0:
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, arraygen.ErrNegativeSize, c.ArraySize)
	case c.MinLength < 0:
		return fmt.Errorf("%w: min length must not be negative, got %d", ErrInvalidConfig, c.MinLength)
	case c.MinLength > c.ArraySize:
		return fmt.Errorf("%w: min length %d exceeds array size %d", ErrInvalidConfig, c.MinLength, c.ArraySize)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, c.Step)
	}
	return nil
}

// Lengths returns the prefix lengths timed for every array.
func (c Config) Lengths() []int {
	var lengths []int
	for n := c.MinLength; n <= c.ArraySize; n += c.Step {
		lengths = append(lengths, n)
	}
	return lengths
}

// ParseModes parses a comma-separated list of name:threshold pairs.
func ParseModes(s string) ([]Mode, error) {
	var modes []Mode
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, threshold, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: mode %q is not name:threshold", ErrInvalidConfig, part)
		}
		th, err := strconv.Atoi(strings.TrimSpace(threshold))
		if err != nil {
			return nil, fmt.Errorf("%w: mode %q: %w", ErrInvalidConfig, part, err)
		}
		modes = append(modes, Mode{Name: strings.TrimSpace(name), Threshold: th})
	}
	return modes, nil
}
