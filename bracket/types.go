/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

// Availability is an entrant's session tag. Day entrants are drawn into the
// top half of the bracket, night entrants into the bottom half. The zero
// value means the entrant did not declare a session.
type Availability byte

const (
	AvailabilityNone Availability = 0
	Day              Availability = 'D'
	Night            Availability = 'N'
)

// Participant is one entrant in a draw. A BYE is a sentinel Participant with
// IsBye set; it owns no identity and may appear in any number of slots.
// Real participants are treated as immutable: the engine returns fresh
// copies when assigning seeds rather than writing through to its input.
type Participant struct {
	Name         string
	IsBye        bool
	Seed         int // 1-based final slot position; 0 until placed, always 0 for a BYE
	Availability Availability

	// Internally a negative handicap denotes a "plus" player; nil means
	// not on record.
	SinglesHandicap *float64
	DoublesHandicap *float64
}

// Bye returns the BYE sentinel.
func Bye() Participant {
	return Participant{Name: "BYE", IsBye: true}
}

// Stats summarizes the structural decisions a placement made.
type Stats struct {
	BracketSize        int
	Entrants           int
	Round2Slots        int
	PlayInMatches      int
	PlayInParticipants int
	ByesToRound2       int
}

// Placement is the result of Place: a slot array of exactly BracketSize
// participants (real or BYE, never a hole) plus the structural stats.
type Placement struct {
	Slots []Participant
	Stats Stats
}

// Match is one round-1 pairing. Winner is set at build time iff exactly one
// side is a BYE; otherwise it stays nil for external resolution.
type Match struct {
	Number  int // 1-based, contiguous
	Player1 Participant
	Player2 Participant
	Winner  *Participant
}

// Round1 is the first round of a draw as built from a slot array.
type Round1 struct {
	Matches []Match
}

// BracketSizes lists the supported bracket sizes in ascending order.
var BracketSizes = []int{8, 16, 32, 64, 128}

func validSize(size int) bool {
	for _, s := range BracketSizes {
		if s == size {
			return true
		}
	}
	return false
}
