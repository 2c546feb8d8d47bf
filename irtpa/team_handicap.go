/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package irtpa

import (
	"errors"
	"math"
)

// IRTPA doubles team handicap calculator based on:
//   1. https://www.irtpa.net/rules/handicap-system
//   2. https://www.irtpa.net/rules/doubles-adjustment-table (2024 revision)
//
// A doubles team plays off the stronger partner's handicap (the numerically
// lower one; a "plus" player's handicap is negative) plus an adjustment read
// from the published table, keyed by the whole-point difference between the
// partners. The table tops out at a difference of 60; anything wider takes
// the maximum adjustment of 12.0. Partners with identical handicaps get no
// adjustment at all.
//
// Fractional handicaps can arise for plus players; the table is defined on
// whole points only, so the difference is truncated before lookup. This
// matches how the printed table is applied at the desk.

// ErrMissingHandicap is returned when a player has neither a doubles nor a
// singles handicap on record.
var ErrMissingHandicap = errors.New("player has no handicap on record")

const (
	// maxTableDifference is the widest difference the adjustment table
	// distinguishes; wider gaps saturate at maxAdjustment.
	maxTableDifference = 60
	maxAdjustment      = 12.0
)

// adjustmentFor returns the table adjustment for a whole-point handicap
// difference. The table steps by 0.3 per point up to 12 points, by 0.2 per
// point from 13 through 48, and by 0.1 per point from 49 through 60.
func adjustmentFor(diff int) float64 {
	switch {
	case diff <= 0:
		return 0.0
	case diff <= 12:
		return round1(0.3 * float64(diff))
	case diff <= 48:
		return round1(3.6 + 0.2*float64(diff-12))
	case diff <= maxTableDifference:
		return round1(10.8 + 0.1*float64(diff-48))
	default:
		return maxAdjustment
	}
}

// round1 rounds to one decimal place, the table's printed precision.
func round1(v float64) float64 {
	return math.Round(v*10.0) / 10.0
}

// TeamHandicap is the result of a doubles team handicap calculation.
type TeamHandicap struct {
	// Difference is the whole-point gap between the partners' handicaps
	// used for the table lookup.
	Difference int
	// Adjustment is the table value added to the stronger partner's
	// handicap.
	Adjustment float64
	// BetterHandicap is the stronger partner's handicap (the lower
	// number; negative for plus players).
	BetterHandicap float64
	// Combined is the handicap the team plays off.
	Combined float64
}

// CalcTeamHandicap computes the handicap a doubles team plays off from its
// two partners' individual handicaps. Argument order does not matter.
func CalcTeamHandicap(a float64, b float64) TeamHandicap {
	better := math.Min(a, b)
	diff := int(math.Floor(math.Abs(a - b)))
	adj := adjustmentFor(diff)

	return TeamHandicap{
		Difference:     diff,
		Adjustment:     adj,
		BetterHandicap: better,
		Combined:       round1(better + adj),
	}
}

// EffectiveHandicap selects the handicap a player brings to a doubles draw:
// the lower of the singles and doubles handicaps when both are on record,
// otherwise whichever one is.
func EffectiveHandicap(singles *float64, doubles *float64) (float64, error) {
	switch {
	case singles != nil && doubles != nil:
		return math.Min(*singles, *doubles), nil
	case doubles != nil:
		return *doubles, nil
	case singles != nil:
		return *singles, nil
	}
	return 0, ErrMissingHandicap
}
