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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/profile"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new profile-name",
		Short: "Create a new ladder profile",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`new creates a profile which records a competitor's matches
			on a ladder with the given promotion threshold.

			If --win-rate is given, rank statistics are always calculated
			with that win probability. Otherwise it is estimated from the
			matches recorded in the profile.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetInt("threshold")
			force, _ := cmd.Flags().GetBool("force")

			var winRate *float64
			if cmd.Flags().Changed("win-rate") {
				p, _ := cmd.Flags().GetFloat64("win-rate")
				winRate = &p
			}

			store := profile.DefaultStore()
			if store.Exists(args[0]) && !force {
				return fmt.Errorf("profile %s already exists, use --force to replace it", args[0])
			}

			prof, err := profile.New(args[0], threshold, winRate)
			if err != nil {
				return err
			}

			if err := store.Save(prof); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mCreated Profile:\x1b[0m %s\n", prof.Name)
			return nil
		},
	}

	cmd.Flags().IntP("threshold", "k", 5, "Net wins needed for a promotion (4 or 5)")
	cmd.Flags().Float64P("win-rate", "p", 0, "Fixed probability of winning a single match")
	cmd.Flags().BoolP("force", "f", false, "Replace an existing profile with the same name")

	return cmd
}
