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

package profile

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ladder/pkg/match"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "profiles"))

	profile, err := New("main", 5, winRate(0.55))
	require.NoError(t, err)
	profile.Record(match.Win)
	profile.Record(match.Win)
	profile.Record(match.Loss)

	require.NoError(t, store.Save(profile))
	assert.True(t, store.Exists("main"))

	loaded, err := store.Load("main")
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)
}

func TestStoreFormat(t *testing.T) {
	store := NewStore(t.TempDir())

	profile, err := New("main", 4, nil)
	require.NoError(t, err)
	profile.Record(match.Loss)
	require.NoError(t, store.Save(profile))

	data, err := os.ReadFile(filepath.Join(store.Dir, "main.yaml"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "threshold: 4")
	assert.Contains(t, string(data), "net-wins: -1")
	assert.NotContains(t, string(data), "win-rate")
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Load("a/b")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestStoreListAndRemove(t *testing.T) {
	store := NewStore(t.TempDir())

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"smurf10", "main", "smurf2"} {
		profile, err := New(name, 4, nil)
		require.NoError(t, err)
		require.NoError(t, store.Save(profile))
	}
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "notes.txt"), nil, 0644))

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "smurf2", "smurf10"}, names)

	require.NoError(t, store.Remove("smurf2"))
	assert.ErrorIs(t, store.Remove("smurf2"), ErrNotFound)

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "smurf10"}, names)
}

func TestStoreListMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nothing"))

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReport(t *testing.T) {
	profile, err := New("main", 4, winRate(0.5))
	require.NoError(t, err)

	var buf bytes.Buffer
	profile.Report(&buf)

	out := buf.String()
	assert.Contains(t, out, "║ NAME    | main")
	assert.Contains(t, out, "50.00% (fixed)")
	assert.Contains(t, out, "63.64%")
	assert.Contains(t, out, "10.36 more matches")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "NaN", FormatProbability(math.NaN()))
	assert.Equal(t, "12.50%", FormatProbability(0.125))
	assert.Equal(t, "inf", FormatMatches(math.Inf(+1)))
	assert.Equal(t, "3.00", FormatMatches(3))
}
