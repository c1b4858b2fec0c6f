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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ladder/pkg/match"
	"laptudirm.com/x/ladder/pkg/stats"
)

func winRate(p float64) *float64 {
	return &p
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		profile   string
		threshold int
		winRate   *float64
		err       error
	}{
		{"estimated", "main", 5, nil, nil},
		{"fixed", "main", 4, winRate(0.55), nil},
		{"fixed certain loss", "main", 4, winRate(0), nil},
		{"bad threshold", "main", 3, nil, ErrThreshold},
		{"bad win rate", "main", 4, winRate(1.5), ErrWinRate},
		{"empty name", "", 4, nil, ErrInvalidName},
		{"path name", "../main", 4, nil, ErrInvalidName},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profile, err := New(test.profile, test.threshold, test.winRate)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Nil(t, profile)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.threshold, profile.Threshold)
			assert.Equal(t, State{}, profile.State)
		})
	}
}

func TestRecord(t *testing.T) {
	profile, err := New("main", 4, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, match.Ongoing, profile.Record(match.Win))
	}
	assert.Equal(t, 3, profile.State.NetWins)

	assert.Equal(t, match.Promoted, profile.Record(match.Win))
	assert.Equal(t, 0, profile.State.NetWins)
	assert.Equal(t, 1, profile.State.Promotions)

	for i := 0; i < 2; i++ {
		assert.Equal(t, match.Ongoing, profile.Record(match.Loss))
	}
	assert.Equal(t, match.Demoted, profile.Record(match.Loss))

	assert.Equal(t, State{
		NetWins:    0,
		Wins:       4,
		Losses:     3,
		Promotions: 1,
		Demotions:  1,
	}, profile.State)
	assert.Equal(t, 7, profile.Matches())
}

func TestWinProbability(t *testing.T) {
	fixed, err := New("fixed", 5, winRate(0.3))
	require.NoError(t, err)
	fixed.Record(match.Win)
	assert.Equal(t, 0.3, fixed.WinProbability())

	estimated, err := New("estimated", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, estimated.WinProbability())

	estimated.State.Wins, estimated.State.Losses = 9, 0
	assert.InDelta(t, 0.95, estimated.WinProbability(), 1e-12)
}

func TestStats(t *testing.T) {
	profile, err := New("main", 4, winRate(0.5))
	require.NoError(t, err)

	rank := profile.Stats()
	assert.Equal(t, stats.Calculate(0.5, 4, 0), rank)
	assert.InDelta(t, 7.0/11, rank.PromotionProbability, 1e-12)

	lower, upper := profile.StatsRange()
	assert.Equal(t, rank, lower)
	assert.Equal(t, rank, upper)
}

func TestStatsRange(t *testing.T) {
	profile, err := New("main", 5, nil)
	require.NoError(t, err)
	profile.State.Wins, profile.State.Losses = 30, 20

	rank := profile.Stats()
	lower, upper := profile.StatsRange()

	assert.Less(t, lower.PromotionProbability, rank.PromotionProbability)
	assert.Greater(t, upper.PromotionProbability, rank.PromotionProbability)
}
