/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package irtpa

import (
	"fmt"
	"math"
	"strings"
)

// classBounds are the displayed-handicap bounds per IRTPA class event. The
// event name is matched by substring, so "Summer 3rd Class Doubles" finds
// the 3rd class band. Championship events carry no bounds.
type classBounds struct {
	label    string
	min, max float64
}

var classTable = []classBounds{
	{"1st class", 10, 19},
	{"2nd class", 20, 29},
	{"3rd class", 30, 39},
	{"4th class", 40, 49},
	{"5th class", 50, 59},
}

// RoundToClass clamps a handicap into the bounds of its event class for
// display. Values at or below 19, including negative "plus" handicaps, are
// never rounded: a strong player entering a weaker class keeps their real
// handicap on the card. Championship events and events naming no class pass
// the value through unchanged.
func RoundToClass(handicap float64, eventName string) float64 {
	if handicap <= 19 {
		return handicap
	}
	name := strings.ToLower(eventName)
	if strings.Contains(name, "championship") {
		return handicap
	}
	for _, c := range classTable {
		if !strings.Contains(name, c.label) {
			continue
		}
		if handicap > c.max {
			return c.max
		}
		if handicap < c.min {
			return c.min
		}
		return handicap
	}

	return handicap
}

// FormatHandicap renders a handicap the way it appears on a draw sheet: plus
// players (stored negative) print as "+N", everyone else as the plain
// number. Whole values print without a decimal point.
func FormatHandicap(handicap float64) string {
	prefix := ""
	if handicap < 0 {
		prefix = "+"
		handicap = -handicap
	}
	if handicap == math.Trunc(handicap) {
		return fmt.Sprintf("%v%v", prefix, int(handicap))
	}
	return fmt.Sprintf("%v%.1f", prefix, handicap)
}
