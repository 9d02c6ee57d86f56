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
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	seedEnv    = "EXPERIMENTS_SEED"
	verboseEnv = "EXPERIMENTS_VERBOSE"
)

type rootOptions struct {
	seed    uint64
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "experiments",
		Short:         "Sorting benchmark and Monte-Carlo circle intersection experiments",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Random seed (default: $"+seedEnv+" or a random value)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr (also $"+verboseEnv+")")

	root.AddCommand(
		newSortBenchCmd(opts),
		newCirclesCmd(opts),
		newReportCmd(),
	)
	return root
}

// resolveSeed picks the seed from the flag, the environment or at random.
func (o *rootOptions) resolveSeed(cmd *cobra.Command) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return o.seed, nil
	}
	if val := os.Getenv(seedEnv); val != "" {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing $%s: %w", seedEnv, err)
		}
		return seed, nil
	}
	return rand.Uint64(), nil
}

// isVerbose reports whether --verbose or EXPERIMENTS_VERBOSE is set.
// Any non-empty value of the variable counts, unless it parses as false.
func (o *rootOptions) isVerbose() bool {
	if o.verbose {
		return true
	}
	val := os.Getenv(verboseEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func logf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
