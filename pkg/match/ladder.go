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

package match

import "laptudirm.com/x/ladder/pkg/stats"

// Outcome is the state of a ladder run after a match.
type Outcome int

const (
	Ongoing  Outcome = iota // neither barrier reached
	Promoted                // net wins reached the promotion threshold
	Demoted                 // net wins reached the demotion barrier
)

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Ongoing:
		return "ongoing"
	case Promoted:
		return "promoted"
	case Demoted:
		return "demoted"
	default:
		return "unknown"
	}
}

// Step returns the net wins after a match with the given result.
func Step(netWins int, result Result) int {
	return netWins + int(result)
}

// OutcomeOf returns the Outcome of a ladder run standing at netWins with the
// given promotion threshold.
func OutcomeOf(netWins, threshold int) Outcome {
	switch {
	case netWins <= stats.DemotionNetWins:
		return Demoted
	case netWins >= threshold:
		return Promoted
	default:
		return Ongoing
	}
}
