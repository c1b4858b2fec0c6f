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

func Remove() *cobra.Command {
	return &cobra.Command{
		Use:   "remove profile-name",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := profile.DefaultStore().Remove(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mRemoved Profile:\x1b[0m %s\n", args[0])
			return nil
		},
	}
}
