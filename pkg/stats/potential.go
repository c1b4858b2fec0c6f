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

// Potential evaluates the martingale potential M(n) of a walk which steps up
// with probability p. The hitting probability of the upper barrier is the
// ratio of potential differences between the current state and the barriers.
//
// Non-negative states use the biased gambler's ruin potential, or n itself
// for a fair walk. Negative states always use 1 - (1-p)^n, including when p
// is exactly 0.5, so a fair walk is not symmetric around zero.
func Potential(p float64, n int) float64 {
	if n < 0 {
		return 1 - math.Pow(1-p, float64(n))
	}

	if p == 0.5 {
		return float64(n)
	}

	factor := p / (2*p - 1)
	ratio := (1 - p) / p
	return factor * (1 - math.Pow(ratio, float64(n)))
}

// PromotionProbability returns the probability that a competitor standing at
// netWins reaches the threshold before the demotion barrier. It follows the
// same boundary rules as Calculate.
func PromotionProbability(p float64, threshold, netWins int) float64 {
	return Calculate(p, threshold, netWins).PromotionProbability
}

// promotionRatio is (M(n) - M(lower)) / (M(upper) - M(lower)), unclamped.
func promotionRatio(p float64, threshold, netWins int) float64 {
	lower := Potential(p, DemotionNetWins)
	upper := Potential(p, threshold)
	return (Potential(p, netWins) - lower) / (upper - lower)
}
