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

// Package profile keeps track of a competitor's run on a ranking ladder so
// that their rank statistics can be reported as matches are played.
package profile

import (
	"github.com/pkg/errors"

	"laptudirm.com/x/ladder/pkg/match"
	"laptudirm.com/x/ladder/pkg/stats"
)

var (
	ErrThreshold = errors.New("promotion threshold must be 4 or 5")
	ErrWinRate   = errors.New("win rate must be between 0 and 1")
)

// Profile is a single competitor's ladder run.
type Profile struct {
	Name string `yaml:"name"`

	// Threshold is the net wins needed for a promotion.
	Threshold int `yaml:"threshold"`

	// WinRate fixes the per-match win probability. If it is nil, the win
	// probability is estimated from the recorded matches.
	WinRate *float64 `yaml:"win-rate,omitempty"`

	State State `yaml:"state"`
}

// State is the running record of a Profile.
type State struct {
	NetWins int `yaml:"net-wins"`

	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`

	Promotions int `yaml:"promotions"`
	Demotions  int `yaml:"demotions"`
}

// New creates a new profile with an empty record. winRate may be nil.
func New(name string, threshold int, winRate *float64) (*Profile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if !stats.SupportedThreshold(threshold) {
		return nil, ErrThreshold
	}

	if winRate != nil && (*winRate < 0 || *winRate > 1) {
		return nil, ErrWinRate
	}

	return &Profile{
		Name:      name,
		Threshold: threshold,
		WinRate:   winRate,
	}, nil
}

// Record adds a match result to the profile. When the run is promoted or
// demoted, the net wins start over from zero for the next run.
func (profile *Profile) Record(result match.Result) match.Outcome {
	switch result {
	case match.Win:
		profile.State.Wins++
	case match.Loss:
		profile.State.Losses++
	}

	profile.State.NetWins = match.Step(profile.State.NetWins, result)

	outcome := match.OutcomeOf(profile.State.NetWins, profile.Threshold)
	switch outcome {
	case match.Promoted:
		profile.State.Promotions++
		profile.State.NetWins = 0
	case match.Demoted:
		profile.State.Demotions++
		profile.State.NetWins = 0
	}

	return outcome
}

// Matches returns the total number of recorded matches.
func (profile *Profile) Matches() int {
	return profile.State.Wins + profile.State.Losses
}

// WinProbability returns the fixed win rate of the profile if it has one,
// and the estimate from its record otherwise.
func (profile *Profile) WinProbability() float64 {
	if profile.WinRate != nil {
		return *profile.WinRate
	}

	_, mu, _ := stats.WinRate(profile.State.Wins, profile.State.Losses)
	return mu
}

// Stats returns the rank statistics of the profile's current run.
func (profile *Profile) Stats() stats.RankStats {
	return stats.Calculate(profile.WinProbability(), profile.Threshold, profile.State.NetWins)
}

// StatsRange returns the rank statistics at the lower and upper bounds of
// the estimated win rate. With a fixed win rate both equal Stats.
func (profile *Profile) StatsRange() (lower stats.RankStats, upper stats.RankStats) {
	if profile.WinRate != nil {
		rank := profile.Stats()
		return rank, rank
	}

	pMin, _, pMax := stats.WinRate(profile.State.Wins, profile.State.Losses)
	lower = stats.Calculate(pMin, profile.Threshold, profile.State.NetWins)
	upper = stats.Calculate(pMax, profile.Threshold, profile.State.NetWins)
	return lower, upper
}
