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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ladder "laptudirm.com/x/ladder/pkg/common"
	"laptudirm.com/x/ladder/pkg/profile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		matches   string
		promotion string
	}{
		{"fair coin", []string{"stats", "-p", "0.5", "-k", "4", "-n", "0"}, "10.36", "63.64%"},
		{"certain loss", []string{"stats", "--win-rate", "0", "--threshold", "4"}, "3.00", "0.00%"},
		{"certain win", []string{"stats", "-p", "1", "-k", "5", "-n", "-1"}, "5.00", "100.00%"},
		{"invalid threshold", []string{"stats", "-k", "6"}, "inf", "NaN"},
		{"outside table", []string{"stats", "-k", "4", "-n", "4"}, "inf", "100.00%"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			require.NoError(t, err)
			assert.Contains(t, out, test.matches)
			assert.Contains(t, out, test.promotion)
		})
	}
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "-p", "0.5", "-k", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "-2        12.73      36.36%")
	assert.Contains(t, out, "+0        10.36      63.64%")
	assert.Contains(t, out, "+3        6.18       90.91%")
	assert.NotContains(t, out, "+4 ")

	_, err = run(t, "table", "-k", "3")
	assert.ErrorIs(t, err, profile.ErrThreshold)
}

func TestProfileCommands(t *testing.T) {
	t.Setenv(ladder.HomeEnv, t.TempDir())

	out, err := run(t, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No Profiles Found.")

	_, err = run(t, "profile", "new", "main", "-k", "4", "-p", "0.5")
	require.NoError(t, err)

	_, err = run(t, "profile", "new", "main", "-k", "4")
	assert.Error(t, err)

	out, err = run(t, "profile", "record", "main", "w", "wl", "loss")
	require.NoError(t, err)
	assert.Contains(t, out, "Net Wins: +0")
	assert.Contains(t, out, "Promotion: 63.64%")

	out, err = run(t, "profile", "record", "main", "wwww")
	require.NoError(t, err)
	assert.Contains(t, out, "Promoted!")

	prof, err := profile.DefaultStore().Load("main")
	require.NoError(t, err)
	assert.Equal(t, profile.State{Wins: 6, Losses: 2, Promotions: 1}, prof.State)

	out, err = run(t, "profile", "show", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "║ NAME    | main")
	assert.Contains(t, out, "N: 8 W: 6 L: 2")

	out, err = run(t, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "main")

	_, err = run(t, "profile", "record", "main", "draw")
	assert.Error(t, err)

	_, err = run(t, "profile", "remove", "main")
	require.NoError(t, err)

	_, err = run(t, "profile", "show", "main")
	assert.ErrorIs(t, err, profile.ErrNotFound)
}
