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

	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/profile"
)

func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved profiles",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.DefaultStore()
			names, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "\x1b[31mNo Profiles Found.\x1b[0m")
				return nil
			}

			fmt.Fprint(out, "\x1b[32mProfiles\x1b[0m:\n\n")
			for _, name := range names {
				prof, err := store.Load(name)
				if err != nil {
					return err
				}

				rank := prof.Stats()
				fmt.Fprintf(out, "- %-20s %+d/%d  %s\n",
					"\x1b[34m"+name+"\x1b[0m:",
					prof.State.NetWins, prof.Threshold,
					profile.FormatProbability(rank.PromotionProbability),
				)
			}

			return nil
		},
	}
}
