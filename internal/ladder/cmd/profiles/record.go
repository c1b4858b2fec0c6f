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

package profiles

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/match"
	"laptudirm.com/x/ladder/pkg/profile"
)

func Record() *cobra.Command {
	return &cobra.Command{
		Use:   "record profile-name result...",
		Short: "Record match results in a profile",
		Args:  cobra.MinimumNArgs(2),
		Long: heredoc.Doc(`record adds the given match results to a profile, in the
			order they were played. A result is w or win for a win and l or
			loss for a loss. Runs of results can also be written together,
			so "wwlw" records four matches.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := parseResults(args[1:])
			if err != nil {
				return err
			}

			store := profile.DefaultStore()
			prof, err := store.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				outcome := prof.Record(result)
				logrus.WithFields(logrus.Fields{
					"result":   result,
					"net-wins": prof.State.NetWins,
					"outcome":  outcome,
				}).Debug("Recorded match")

				switch outcome {
				case match.Promoted:
					fmt.Fprintln(out, "\x1b[32mPromoted!\x1b[0m")
				case match.Demoted:
					fmt.Fprintln(out, "\x1b[31mDemoted.\x1b[0m")
				}
			}

			if err := store.Save(prof); err != nil {
				return err
			}

			rank := prof.Stats()
			fmt.Fprintf(out, "Net Wins: %+d, Promotion: %s, Expected Matches: %s\n",
				prof.State.NetWins,
				profile.FormatProbability(rank.PromotionProbability),
				profile.FormatMatches(rank.ExpectedMatches),
			)
			return nil
		},
	}
}

// parseResults parses each argument as a single result, or as a run of
// single letter results.
func parseResults(args []string) ([]match.Result, error) {
	var results []match.Result
	for _, arg := range args {
		if result, err := match.ParseResult(arg); err == nil {
			results = append(results, result)
			continue
		}

		if strings.Trim(strings.ToLower(arg), "wl") != "" {
			return nil, fmt.Errorf("invalid match result %q", arg)
		}

		for _, letter := range arg {
			result, _ := match.ParseResult(string(letter))
			results = append(results, result)
		}
	}

	return results, nil
}
