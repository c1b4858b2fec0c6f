// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/profile"
	"laptudirm.com/x/ladder/pkg/stats"
)

// ladder table
func Table() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate the rank statistics of every ladder state",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`table prints the rank statistics for each net wins value
			between the demotion and promotion barriers, so that a whole
			ladder can be read at a glance for a given win rate.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := cmd.Flags().GetFloat64("win-rate")
			threshold, _ := cmd.Flags().GetInt("threshold")

			table, found := stats.DurationTables[threshold]
			if !found {
				return fmt.Errorf("%w, got %d", profile.ErrThreshold, threshold)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\x1b[34m%-9s %-10s %s\x1b[0m\n", "Net Wins", "Matches", "Promotion")
			for netWins := table.Lowest; netWins <= table.Highest(); netWins++ {
				rank := stats.Calculate(p, threshold, netWins)
				fmt.Fprintf(out, "%+-9d %-10s %s\n",
					netWins,
					profile.FormatMatches(rank.ExpectedMatches),
					profile.FormatProbability(rank.PromotionProbability),
				)
			}

			return nil
		},
	}

	addLadderFlags(cmd)
	return cmd
}
