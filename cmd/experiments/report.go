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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-experiments/bench"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [FILE]",
		Short: "Average sortbench records per tag and prefix length",
		Long: `Reads sortbench output (from FILE, or stdin when FILE is absent or "-") and
prints "<tag> <length> <mean_us> <samples>" lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, openErr := os.Open(args[0])
				if openErr != nil {
					return fmt.Errorf("opening records: %w", openErr)
				}
				defer func() {
					err = errors.Join(err, file.Close())
				}()
				in = file
			}

			records, err := bench.ReadRecords(in)
			if err != nil {
				return fmt.Errorf("reading records: %w", err)
			}
			return bench.WriteSummaries(cmd.OutOrStdout(), bench.Summarize(records))
		},
	}
}
