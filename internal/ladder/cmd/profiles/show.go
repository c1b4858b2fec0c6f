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
	"github.com/spf13/cobra"

	"laptudirm.com/x/ladder/pkg/profile"
)

func Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show profile-name",
		Short: "Show a profile's record and rank statistics",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := profile.DefaultStore().Load(args[0])
			if err != nil {
				return err
			}

			prof.Report(cmd.OutOrStdout())
			return nil
		},
	}
}
