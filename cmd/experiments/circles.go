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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-experiments/geometry"
)

type circlesOptions struct {
	min, max, step int
	workers        int
}

func newCirclesCmd(root *rootOptions) *cobra.Command {
	def := geometry.DefaultSweepConfig(0)
	opts := &circlesOptions{}

	cmd := &cobra.Command{
		Use:   "circles",
		Short: "Estimate the three-circle intersection area by Monte-Carlo sampling",
		Long: `Sweeps the sample count and prints "<n> <estimate_large> <estimate_small>"
lines, estimating over a rectangle covering all circles and over one covering
only their overlap. The exact area is logged to stderr for comparison.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := root.resolveSeed(cmd)
			if err != nil {
				return err
			}
			cfg := geometry.DefaultSweepConfig(seed)
			cfg.MinSamples = opts.min
			cfg.MaxSamples = opts.max
			cfg.Step = opts.step
			cfg.Workers = opts.workers

			logf(cmd, "circles: seed=%d workers=%d analytic=%.6f", seed, cfg.Workers, geometry.Analytic())
			rows, err := geometry.Sweep(cfg)
			if err != nil {
				return err
			}
			if root.isVerbose() {
				last := rows[len(rows)-1]
				logf(cmd, "circles: %d rows, n=%d large=%.6f small=%.6f",
					len(rows), last.Samples, last.Large, last.Small)
			}
			return geometry.WriteRows(cmd.OutOrStdout(), rows)
		},
	}

	opts.register(cmd.Flags(), def)
	return cmd
}

func (o *circlesOptions) register(f *pflag.FlagSet, def geometry.SweepConfig) {
	f.IntVar(&o.min, "min", def.MinSamples, "Smallest sample count")
	f.IntVar(&o.max, "max", def.MaxSamples, "Sample counts stay below this value")
	f.IntVar(&o.step, "step", def.Step, "Sample count increment")
	f.IntVar(&o.workers, "workers", def.Workers, "Rows estimated concurrently")
}
