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

package stats

import "math"

// WinRate estimates the per-match win probability of a competitor from
// their record, along with its p < 0.05 lower and upper bounds. Half a win
// and half a loss are added to the record, so an empty or one-sided record
// still gives an estimate strictly inside (0, 1).
func WinRate(ws, ls int) (lower float64, mu float64, upper float64) {
	N := float64(ws+ls) + 1 // total number of matches

	mu = (float64(ws) + 0.5) / N // measured win probability

	// standard deviation of the estimate
	sigma := math.Sqrt(mu*(1-mu)) / math.Sqrt(N)

	lower = mu + phiInv(0.025)*sigma
	upper = mu + phiInv(0.975)*sigma

	return clamp(lower, 0, 1), mu, clamp(upper, 0, 1)
}
