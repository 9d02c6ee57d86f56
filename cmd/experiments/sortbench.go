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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-experiments/arraygen"
	"github.com/ajroetker/go-experiments/bench"
	"github.com/ajroetker/go-experiments/internal/cpuinfo"
)

type sortBenchOptions struct {
	output    string
	modes     string
	shapes    string
	attempts  int
	size      int
	minLength int
	step      int
}

func newSortBenchCmd(root *rootOptions) *cobra.Command {
	def := bench.DefaultConfig()
	opts := &sortBenchOptions{}

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Time ultrasort on random, reversed and almost-sorted arrays",
		Long: `Times ultrasort on growing prefixes of generated arrays and writes one
"<length> <mode> <shape> <microseconds>" line per sort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSortBench(cmd, root, opts)
		},
	}

	opts.register(cmd.Flags(), def)
	return cmd
}

func (o *sortBenchOptions) register(f *pflag.FlagSet, def bench.Config) {
	f.StringVarP(&o.output, "output", "o", "res2.csv", `Output file ("-" for stdout)`)
	f.StringVar(&o.modes, "modes", strings.Join(lo.Map(def.Modes, func(m bench.Mode, _ int) string { return m.String() }), ","),
		"Comma-separated name:threshold sort modes")
	f.StringVar(&o.shapes, "shapes", strings.Join(lo.Map(def.Shapes, func(s arraygen.Shape, _ int) string { return s.String() }), ","),
		"Comma-separated array shapes")
	f.IntVar(&o.attempts, "attempts", def.Attempts, "Fresh arrays per mode and shape")
	f.IntVar(&o.size, "size", def.ArraySize, "Generated array length")
	f.IntVar(&o.minLength, "min-length", def.MinLength, "Shortest timed prefix")
	f.IntVar(&o.step, "step", def.Step, "Prefix length increment")
}

func (o *sortBenchOptions) config() (bench.Config, error) {
	modes, err := bench.ParseModes(o.modes)
	if err != nil {
		return bench.Config{}, err
	}
	shapes, err := arraygen.ParseShapes(o.shapes)
	if err != nil {
		return bench.Config{}, err
	}
	cfg := bench.Config{
		Modes:     modes,
		Shapes:    shapes,
		Attempts:  o.attempts,
		ArraySize: o.size,
		MinLength: o.minLength,
		Step:      o.step,
	}
	return cfg, cfg.Validate()
}

func runSortBench(cmd *cobra.Command, root *rootOptions, opts *sortBenchOptions) (err error) {
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	seed, err := root.resolveSeed(cmd)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, arraygen.New(seed))
	if err != nil {
		return err
	}
	if root.isVerbose() {
		runner.OnAttempt = func(mode bench.Mode, attempt int) {
			logf(cmd, "%s: attempt %d/%d", mode, attempt+1, cfg.Attempts)
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "-" {
		file, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("creating output: %w", createErr)
		}
		defer func() {
			err = errors.Join(err, file.Close())
		}()
		out = file
	}

	logf(cmd, "sortbench: seed=%d cpu=%s", seed, cpuinfo.Describe())
	start := time.Now()

	w := bench.NewWriter(out)
	count := 0
	err = runner.Run(func(rec bench.Record) error {
		count++
		return w.Write(rec)
	})
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	logf(cmd, "sortbench: %d records in %v", count, time.Since(start).Round(time.Millisecond))
	return nil
}
