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

// Degree is the maximum degree of the duration polynomials.
const Degree = 6

// Polynomial is a polynomial in p of degree at most Degree, stored as its
// coefficients in ascending order of power.
type Polynomial [Degree + 1]float64

// Powers returns p^0 through p^Degree. The powers are computed once per
// calculation and shared by every polynomial evaluated for it, which keeps
// the rounding identical across calls with the same p.
func Powers(p float64) (powers [Degree + 1]float64) {
	powers[0] = 1
	for i := 1; i <= Degree; i++ {
		powers[i] = powers[i-1] * p
	}

	return powers
}

// Eval evaluates the polynomial using precomputed powers of p.
func (poly Polynomial) Eval(powers [Degree + 1]float64) (sum float64) {
	for i := Degree; i >= 0; i-- {
		sum += poly[i] * powers[i]
	}

	return sum
}

// DurationTable holds the closed-form expected absorption times of the walk
// for one promotion threshold. The expected time from state n is
// Numerators[n-Lowest](p) / Denominator(p).
//
// The tables come from solving E(n) = 1 + p E(n+1) + (1-p) E(n-1) for
// DemotionNetWins < n < Threshold with E(DemotionNetWins) = E(Threshold) = 0
// symbolically. Supporting a new threshold means solving that system again.
type DurationTable struct {
	Threshold int
	Lowest    int

	Denominator Polynomial
	Numerators  []Polynomial
}

// Highest returns the highest state with a tabulated expected time.
func (table DurationTable) Highest() int {
	return table.Lowest + len(table.Numerators) - 1
}

// Expected returns the expected number of matches from state n, or +Inf if
// n has no tabulated numerator. The result is not clamped.
func (table DurationTable) Expected(powers [Degree + 1]float64, n int) float64 {
	if n < table.Lowest || n > table.Highest() {
		return math.Inf(+1)
	}

	return table.Numerators[n-table.Lowest].Eval(powers) / table.Denominator.Eval(powers)
}

// DurationTables maps each supported promotion threshold to its table.
var DurationTables = map[int]DurationTable{
	4: {
		Threshold: 4,
		Lowest:    -2,

		Denominator: Polynomial{1, -5, 11, -13, 11, -5, 1},
		Numerators: []Polynomial{
			{3, -6, 10, -1, -4, 2, 0},    // -2
			{4, -9, 15, -11, 5, -1, 0},   // -1
			{5, -12, 13, -3, -2, 1, 0},   // +0
			{2, -3, 5, 2, -2, 0, 0},      // +1
			{1, -1, 1, 2, 2, 0, 0},       // +2
			{6, -22, 36, -29, 12, -2, 0}, // +3
		},
	},

	5: {
		Threshold: 5,
		Lowest:    -2,

		Denominator: Polynomial{1, -6, 16, -24, 22, -10, 2},
		Numerators: []Polynomial{
			{1, -2, 0, 3, 3, 0, 0},        // -2
			{-2, 5, -8, 3, -6, 0, 3},      // -1
			{3, -9, 16, -11, 12, -9, 3},   // +0
			{4, -13, 24, -19, 10, -2, 0},  // +1
			{5, -17, 32, -35, 29, -14, 3}, // +2
			{6, -21, 32, -22, 8, -1, 0},   // +3
			{7, -33, 69, -78, 52, -19, 3}, // +4
		},
	},
}
