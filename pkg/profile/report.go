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
	"fmt"
	"io"
	"math"

	"laptudirm.com/x/ladder/pkg/stats"
)

// Report writes a summary of the profile and its rank statistics to w.
func (profile *Profile) Report(w io.Writer) {
	rank := profile.Stats()
	lower, upper := profile.StatsRange()

	state := profile.State

	name_str := fmt.Sprintf("║ NAME    | %s", profile.Name)
	lad_str := fmt.Sprintf("║ LADDER  | %+d (%d, %+d)", state.NetWins, stats.DemotionNetWins, profile.Threshold)
	gam_str := fmt.Sprintf("║ MATCHES | N: %d W: %d L: %d", profile.Matches(), state.Wins, state.Losses)
	run_str := fmt.Sprintf("║ RUNS    | Promoted: %d Demoted: %d", state.Promotions, state.Demotions)

	var win_str string
	if profile.WinRate != nil {
		win_str = fmt.Sprintf("║ WINRATE | %.2f%% (fixed)", 100*profile.WinProbability())
	} else {
		pMin, p, pMax := stats.WinRate(state.Wins, state.Losses)
		win_str = fmt.Sprintf("║ WINRATE | %.2f%% [%.2f%%, %.2f%%] (95%%)", 100*p, 100*pMin, 100*pMax)
	}

	pro_str := fmt.Sprintf("║ PROMOTE | %s [%s, %s]",
		FormatProbability(rank.PromotionProbability),
		FormatProbability(lower.PromotionProbability),
		FormatProbability(upper.PromotionProbability),
	)
	exp_str := fmt.Sprintf("║ EXPECT  | %s more matches", FormatMatches(rank.ExpectedMatches))

	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	for _, line := range []string{name_str, lad_str, gam_str, run_str, win_str, pro_str, exp_str} {
		fmt.Fprintf(w, "%-50s║\n", line)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}

// FormatProbability formats a probability as a percentage.
func FormatProbability(p float64) string {
	if math.IsNaN(p) {
		return "NaN"
	}

	return fmt.Sprintf("%.2f%%", 100*p)
}

// FormatMatches formats an expected number of matches.
func FormatMatches(n float64) string {
	if math.IsInf(n, +1) {
		return "inf"
	}

	return fmt.Sprintf("%.2f", n)
}
