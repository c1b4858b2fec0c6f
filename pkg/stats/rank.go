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

// Package stats computes the progress statistics of a competitor on a
// win/loss ranking ladder: the expected number of matches until the
// competitor is promoted or demoted, and the probability that promotion
// comes first.
//
// A competitor's standing is a net-wins counter which moves up by one on a
// win and down by one on a loss. The ladder demotes at DemotionNetWins and
// promotes at a threshold of 4 or 5. Every match is won independently with
// a fixed probability p.
package stats

import "math"

// DemotionNetWins is the absorbing lower barrier of the ladder.
const DemotionNetWins = -3

// RankStats is the result of a rank statistics calculation.
type RankStats struct {
	// ExpectedMatches is the expected number of matches still to be played
	// before the competitor is either promoted or demoted. It is never
	// negative, and is +Inf where no closed form is available.
	ExpectedMatches float64

	// PromotionProbability is the probability that promotion happens before
	// demotion. It lies in [0, 1], or is NaN for an unsupported threshold.
	PromotionProbability float64
}

// Valid reports whether the stats are a finite result and not one of the
// sentinel values returned for unsupported inputs.
func (rank RankStats) Valid() bool {
	return !math.IsInf(rank.ExpectedMatches, 0) && !math.IsNaN(rank.PromotionProbability)
}

// Path is one of the evaluation paths a calculation can be routed to.
type Path int

const (
	InvalidThreshold Path = iota // threshold is not 4 or 5
	CertainLoss                  // p <= 0, every match is lost
	CertainWin                   // p >= 1, every match is won
	General                      // 0 < p < 1, rational function tables
)

// String returns a string representation of the given Path.
func (path Path) String() string {
	switch path {
	case InvalidThreshold:
		return "invalid-threshold"
	case CertainLoss:
		return "certain-loss"
	case CertainWin:
		return "certain-win"
	case General:
		return "general"
	default:
		return "unknown"
	}
}

// Classify selects the evaluation path for the given win probability and
// promotion threshold. Probabilities outside [0, 1] fold into the certain
// loss and certain win paths instead of being rejected.
func Classify(p float64, threshold int) Path {
	switch {
	case !SupportedThreshold(threshold):
		return InvalidThreshold
	case p <= 0:
		return CertainLoss
	case p >= 1:
		return CertainWin
	default:
		return General
	}
}

// Calculate returns the rank statistics of a competitor who wins each match
// with probability p, is promoted at the given net-wins threshold, and
// currently stands at netWins.
//
// An unsupported threshold returns (+Inf, NaN). Calculate never fails and
// keeps no state between calls, so it is safe for concurrent use.
func Calculate(p float64, threshold, netWins int) RankStats {
	switch Classify(p, threshold) {
	case InvalidThreshold:
		return RankStats{
			ExpectedMatches:      math.Inf(+1),
			PromotionProbability: math.NaN(),
		}

	case CertainLoss:
		return RankStats{
			ExpectedMatches:      certainLossMatches(netWins),
			PromotionProbability: 0,
		}

	case CertainWin:
		return RankStats{
			ExpectedMatches:      certainWinMatches(threshold, netWins),
			PromotionProbability: 1,
		}
	}

	promotion := promotionRatio(p, threshold, netWins)
	expected := DurationTables[threshold].Expected(Powers(p), netWins)

	return RankStats{
		ExpectedMatches:      clamp(expected, 0, math.Inf(+1)),
		PromotionProbability: clamp(promotion, 0, 1),
	}
}

// SupportedThreshold reports whether a duration table exists for the given
// promotion threshold.
func SupportedThreshold(threshold int) bool {
	_, found := DurationTables[threshold]
	return found
}

// certainLossMatches is the number of losses needed to walk from netWins
// down to the demotion barrier. States already at or past the barrier are
// treated as resolved.
func certainLossMatches(netWins int) float64 {
	if netWins >= DemotionNetWins+1 {
		return float64(netWins - DemotionNetWins)
	}

	return 0
}

// certainWinMatches is the number of wins needed to reach the promotion
// threshold. A competitor below zero net wins first takes one win to reach
// +1 and then threshold-1 further wins, regardless of the deficit.
func certainWinMatches(threshold, netWins int) float64 {
	switch {
	case netWins >= threshold:
		return 0
	case netWins < 0:
		return 1 + float64(threshold-1)
	default:
		return float64(threshold - netWins)
	}
}
