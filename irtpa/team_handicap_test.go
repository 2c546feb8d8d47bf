/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package irtpa

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalcTeamHandicap(t *testing.T) {
	cases := []struct {
		name           string
		a, b           float64
		wantDiff       int
		wantAdjustment float64
		wantBetter     float64
		wantCombined   float64
	}{
		{
			name: "thirteen point gap",
			a:    45, b: 32,
			wantDiff: 13, wantAdjustment: 3.8,
			wantBetter: 32, wantCombined: 35.8,
		},
		{
			name: "identical partners",
			a:    25, b: 25,
			wantDiff: 0, wantAdjustment: 0.0,
			wantBetter: 25, wantCombined: 25.0,
		},
		{
			name: "table cap at sixty",
			a:    65, b: 5,
			wantDiff: 60, wantAdjustment: 12.0,
			wantBetter: 5, wantCombined: 17.0,
		},
		{
			name: "beyond the table",
			a:    70, b: 2,
			wantDiff: 68, wantAdjustment: 12.0,
			wantBetter: 2, wantCombined: 14.0,
		},
		{
			name: "plus player partner",
			a:    -3, b: 18,
			wantDiff: 21, wantAdjustment: 5.4,
			wantBetter: -3, wantCombined: 2.4,
		},
		{
			name: "fractional gap truncates",
			a:    10.5, b: 24,
			wantDiff: 13, wantAdjustment: 3.8,
			wantBetter: 10.5, wantCombined: 14.3,
		},
		{
			name: "single point gap",
			a:    20, b: 21,
			wantDiff: 1, wantAdjustment: 0.3,
			wantBetter: 20, wantCombined: 20.3,
		},
		{
			name: "argument order irrelevant",
			a:    32, b: 45,
			wantDiff: 13, wantAdjustment: 3.8,
			wantBetter: 32, wantCombined: 35.8,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalcTeamHandicap(c.a, c.b)
			if got.Difference != c.wantDiff {
				t.Errorf("Difference = %d; want %d", got.Difference,
					c.wantDiff)
			}
			if !almostEqual(got.Adjustment, c.wantAdjustment) {
				t.Errorf("Adjustment = %v; want %v", got.Adjustment,
					c.wantAdjustment)
			}
			if !almostEqual(got.BetterHandicap, c.wantBetter) {
				t.Errorf("BetterHandicap = %v; want %v", got.BetterHandicap,
					c.wantBetter)
			}
			if !almostEqual(got.Combined, c.wantCombined) {
				t.Errorf("Combined = %v; want %v", got.Combined,
					c.wantCombined)
			}
		})
	}
}

func TestAdjustmentTableMonotonic(t *testing.T) {
	prev := 0.0
	for d := 1; d <= maxTableDifference; d++ {
		adj := adjustmentFor(d)
		if adj <= prev {
			t.Errorf("adjustment at diff %d (%v) not above diff %d (%v)",
				d, adj, d-1, prev)
		}
		prev = adj
	}
	if !almostEqual(adjustmentFor(maxTableDifference), maxAdjustment) {
		t.Errorf("table does not reach its cap: %v",
			adjustmentFor(maxTableDifference))
	}
}

func TestEffectiveHandicap(t *testing.T) {
	singles := 30.0
	doubles := 28.0
	lowerSingles := 25.0
	higherDoubles := 30.0
	plus := -2.5

	got, err := EffectiveHandicap(&singles, &doubles)
	if err != nil || !almostEqual(got, 28.0) {
		t.Errorf("doubles lower: got %v, %v", got, err)
	}

	got, err = EffectiveHandicap(&lowerSingles, &higherDoubles)
	if err != nil || !almostEqual(got, 25.0) {
		t.Errorf("singles lower: got %v, %v; want 25", got, err)
	}

	got, err = EffectiveHandicap(&plus, &doubles)
	if err != nil || !almostEqual(got, -2.5) {
		t.Errorf("plus handicap lower: got %v, %v; want -2.5", got, err)
	}

	got, err = EffectiveHandicap(&singles, nil)
	if err != nil || !almostEqual(got, 30.0) {
		t.Errorf("singles only: got %v, %v", got, err)
	}

	got, err = EffectiveHandicap(nil, &doubles)
	if err != nil || !almostEqual(got, 28.0) {
		t.Errorf("doubles only: got %v, %v", got, err)
	}

	_, err = EffectiveHandicap(nil, nil)
	if !errors.Is(err, ErrMissingHandicap) {
		t.Errorf("got err %v; want ErrMissingHandicap", err)
	}
}
