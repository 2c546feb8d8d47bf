/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"fmt"
	"math"
	"math/rand"
)

// Place maps entrants onto a bracket of the given size and decides the
// bye/play-in structure of round 1.
//
// A bracket of size S has S/2 round-2 slots. Whenever more entrants than
// round-2 slots register, the surplus is resolved by "play-in" matches:
// round-1 matches between two real entrants. Everyone else is drawn against
// a BYE and advances to round 2 automatically. Which match slots host the
// play-ins is randomized so they spread across the bracket instead of
// stacking at one end.
//
// When any entrant declares a session (day or night), day entrants are drawn
// into the top half of the bracket and night entrants into the bottom half,
// with play-in matches split between the halves in proportion to group size.
//
// Seeds are assigned by final slot position (slot index + 1), never by
// registration order. Entrant records are copied, not mutated.
func Place(entrants []Participant, bracketSize int, rng *rand.Rand) (*Placement, error) {
	if !validSize(bracketSize) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, bracketSize)
	}
	n := len(entrants)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n > bracketSize {
		return nil, fmt.Errorf("%w: %d entrants exceed bracket size %d",
			ErrInvalidSize, n, bracketSize)
	}
	if rng == nil {
		rng = NewRand()
	}

	stats := computeStats(n, bracketSize)

	slots := make([]Participant, bracketSize)
	occupied := make([]bool, bracketSize)

	switch {
	case n == bracketSize && hasAvailability(entrants):
		placeFullByAvailability(rng, entrants, slots, occupied)
	case n == bracketSize:
		placeFullRandom(rng, entrants, slots, occupied)
	case hasAvailability(entrants):
		if !placePartialByAvailability(rng, entrants, stats, slots, occupied) {
			// the groups are too lopsided to host their shares within
			// their own halves; draw the whole field unsplit instead
			placePartialRandom(rng, entrants, stats, slots, occupied)
		}
	default:
		placePartialRandom(rng, entrants, stats, slots, occupied)
	}

	// safety net: any slot the policies left empty becomes a BYE
	for i := range slots {
		if !occupied[i] {
			slots[i] = Bye()
		}
	}
	// seeds by final slot position
	for i := range slots {
		if slots[i].IsBye {
			slots[i].Seed = 0
		} else {
			slots[i].Seed = i + 1
		}
	}

	if err := verifyPlayInCount(slots, stats); err != nil {
		return nil, err
	}

	return &Placement{Slots: slots, Stats: stats}, nil
}

func computeStats(n, bracketSize int) Stats {
	round2Slots := bracketSize / 2
	playIns := n - round2Slots
	if playIns < 0 {
		playIns = 0
	}

	return Stats{
		BracketSize:        bracketSize,
		Entrants:           n,
		Round2Slots:        round2Slots,
		PlayInMatches:      playIns,
		PlayInParticipants: playIns * 2,
		ByesToRound2:       n - playIns*2,
	}
}

func hasAvailability(entrants []Participant) bool {
	for _, p := range entrants {
		if p.Availability == Day || p.Availability == Night {
			return true
		}
	}
	return false
}

// splitByAvailability partitions entrants into day and night groups.
// Undeclared entrants fill whichever group currently has fewer members so
// the halves stay as balanced as the data allows.
func splitByAvailability(entrants []Participant) (day, night []Participant) {
	var undeclared []Participant
	for _, p := range entrants {
		switch p.Availability {
		case Day:
			day = append(day, p)
		case Night:
			night = append(night, p)
		default:
			undeclared = append(undeclared, p)
		}
	}
	for _, p := range undeclared {
		if len(day) <= len(night) {
			day = append(day, p)
		} else {
			night = append(night, p)
		}
	}

	return day, night
}

// placeFullRandom fills a completely subscribed bracket from a single
// shuffle; every round-1 match is a genuine contest.
func placeFullRandom(rng *rand.Rand, entrants []Participant,
	slots []Participant, occupied []bool) {

	for i, p := range shuffledCopy(rng, entrants) {
		slots[i] = p
		occupied[i] = true
	}
}

// placeFullByAvailability fills a completely subscribed bracket with the day
// block starting at slot 0 and the night block immediately after it. When
// one group overflows its half the other group's block shrinks, so each
// session stays topologically contiguous even under imbalance.
func placeFullByAvailability(rng *rand.Rand, entrants []Participant,
	slots []Participant, occupied []bool) {

	day, night := splitByAvailability(entrants)
	idx := 0
	for _, p := range shuffledCopy(rng, day) {
		slots[idx] = p
		occupied[idx] = true
		idx++
	}
	for _, p := range shuffledCopy(rng, night) {
		slots[idx] = p
		occupied[idx] = true
		idx++
	}
}

// placePartialRandom draws an undersubscribed bracket with no session split:
// one shuffle of the whole field, then a random choice of which match slots
// host the play-ins and which host the byes.
func placePartialRandom(rng *rand.Rand, entrants []Participant, stats Stats,
	slots []Participant, occupied []bool) {

	pool := shuffledCopy(rng, entrants)
	fillMatchSlots(rng, pool, stats.PlayInMatches, 0, stats.BracketSize/2,
		slots, occupied)
}

// placePartialByAvailability draws an undersubscribed bracket with day
// entrants in slots [0, size/2) and night entrants in [size/2, size).
// Returns false without touching the slot array when no feasible play-in
// split exists.
func placePartialByAvailability(rng *rand.Rand, entrants []Participant,
	stats Stats, slots []Participant, occupied []bool) bool {

	day, night := splitByAvailability(entrants)
	dayPlayIns, nightPlayIns, ok := allocatePlayIns(stats.PlayInMatches,
		len(day), len(night), stats.BracketSize)
	if !ok {
		return false
	}

	half := stats.BracketSize / 2
	fillMatchSlots(rng, shuffledCopy(rng, day), dayPlayIns, 0, half/2,
		slots, occupied)
	fillMatchSlots(rng, shuffledCopy(rng, night), nightPlayIns, half, half/2,
		slots, occupied)

	return true
}

// allocatePlayIns splits the required play-in match total between the day
// and night groups proportionally to group size, then adjusts in two phases:
// clamp each side to its feasible range and push any shortfall to the other
// side. The total is preserved exactly.
//
// A group of g members holding p play-in matches uses g-p of its half's
// size/4 match slots (each play-in seats two members, each bye match one),
// so p must be at least g-size/4 and can be at most g/2.
func allocatePlayIns(total, dayCount, nightCount, bracketSize int) (int, int, bool) {
	quarter := bracketSize / 4

	loD := max(0, dayCount-quarter)
	hiD := dayCount / 2
	loN := max(0, nightCount-quarter)
	hiN := nightCount / 2

	if loD > hiD || loN > hiN {
		// a group cannot fit its own half no matter the split
		return 0, 0, false
	}
	if total < loD+loN || total > hiD+hiN {
		return 0, 0, false
	}

	ideal := int(math.Round(float64(total) * float64(dayCount) /
		float64(dayCount+nightCount)))
	d := ideal
	if d < loD {
		d = loD
	} else if d > hiD {
		d = hiD
	}
	nt := total - d
	if nt < loN {
		d -= loN - nt
		nt = loN
	} else if nt > hiN {
		d += nt - hiN
		nt = hiN
	}
	if d < loD || d > hiD {
		return 0, 0, false
	}

	return d, nt, true
}

// fillMatchSlots distributes a shuffled group over the matchCount match
// slots beginning at slot offset. A random permutation decides which match
// slots become play-ins (two members) and which become bye matches (one
// member; the BYE itself is backfilled by the caller). Any match slot left
// untouched stays empty.
func fillMatchSlots(rng *rand.Rand, group []Participant, playIns, offset,
	matchCount int, slots []Participant, occupied []bool) {

	order := perm(rng, matchCount)
	gi := 0
	for m := 0; m < playIns; m++ {
		base := offset + 2*order[m]
		for k := 0; k < 2; k++ {
			slots[base+k] = group[gi]
			occupied[base+k] = true
			gi++
		}
	}
	for m := playIns; gi < len(group); m++ {
		base := offset + 2*order[m]
		slots[base] = group[gi]
		occupied[base] = true
		gi++
	}
}

func verifyPlayInCount(slots []Participant, stats Stats) error {
	got := 0
	for i := 0; i < len(slots); i += 2 {
		if !slots[i].IsBye && !slots[i+1].IsBye {
			got++
		}
	}
	if got != stats.PlayInMatches {
		return fmt.Errorf("%w: placed %d play-in matches, need %d",
			ErrImbalancedAllocation, got, stats.PlayInMatches)
	}

	return nil
}
