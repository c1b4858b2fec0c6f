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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/profile"
	"laptudirm.com/x/ladder/pkg/stats"
)

// ladder stats
func Stats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Calculate the rank statistics of a ladder run",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`stats calculates the expected number of matches until a
			competitor is either promoted or demoted, and the probability
			that the promotion happens first.

			Every match is won independently with the probability given by
			--win-rate. A win adds one to the competitor's net wins and a
			loss takes one away. The competitor is demoted at -3 net wins
			and promoted at --threshold net wins, which can be 4 or 5.

			Unsupported inputs are not errors: an unsupported threshold
			reports inf matches with a NaN probability, and a state with no
			closed form reports inf matches.`),
		Example: heredoc.Doc(`
			$ ladder stats --win-rate 0.55 --threshold 5 --net-wins 2
			$ ladder stats -p 0.5 -k 4`),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := cmd.Flags().GetFloat64("win-rate")
			threshold, _ := cmd.Flags().GetInt("threshold")
			netWins, _ := cmd.Flags().GetInt("net-wins")

			path := stats.Classify(p, threshold)
			logrus.WithFields(logrus.Fields{
				"win-rate":  p,
				"threshold": threshold,
				"net-wins":  netWins,
				"path":      path,
			}).Debug("Calculating rank statistics")

			rank := stats.Calculate(p, threshold, netWins)
			if path == stats.InvalidThreshold {
				logrus.Warnf("Promotion threshold %d is not supported", threshold)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Expected Matches:      \x1b[33m%s\x1b[0m\n", profile.FormatMatches(rank.ExpectedMatches))
			fmt.Fprintf(out, "Promotion Probability: \x1b[32m%s\x1b[0m\n", profile.FormatProbability(rank.PromotionProbability))
			return nil
		},
	}

	addLadderFlags(cmd)
	cmd.Flags().IntP("net-wins", "n", 0, "Current net wins of the competitor")

	return cmd
}

func addLadderFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("win-rate", "p", 0.5, "Probability of winning a single match")
	cmd.Flags().IntP("threshold", "k", 5, "Net wins needed for a promotion (4 or 5)")
}
