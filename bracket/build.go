/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// BuildRound1 projects a slot array into the round-1 match list: slot 2i
// meets slot 2i+1 in match i+1. A match with exactly one BYE side is decided
// immediately in favor of the real entrant. Two BYE sides can only occur
// when the field is smaller than half the bracket; such a match stays
// undecided and feeds an empty round-2 slot.
//
// BuildRound1 uses no randomness; it is a pure projection of its input.
func BuildRound1(slots []Participant) Round1 {
	matches := make([]Match, 0, len(slots)/2)
	for i := 0; i+1 < len(slots); i += 2 {
		m := Match{
			Number:  i/2 + 1,
			Player1: slots[i],
			Player2: slots[i+1],
		}
		if m.Player1.IsBye != m.Player2.IsBye {
			if m.Player1.IsBye {
				w := m.Player2
				m.Winner = &w
			} else {
				w := m.Player1
				m.Winner = &w
			}
		}
		matches = append(matches, m)
	}

	return Round1{Matches: matches}
}
