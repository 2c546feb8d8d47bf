/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"reflect"
	"testing"
)

func TestBuildRound1Pairing(t *testing.T) {
	pl, err := Place(makeEntrants(12), 16, testRand())
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}

	rd := BuildRound1(pl.Slots)
	if len(rd.Matches) != 8 {
		t.Fatalf("len(Matches) = %d; want 8", len(rd.Matches))
	}
	for i, m := range rd.Matches {
		if m.Number != i+1 {
			t.Errorf("match %d: Number = %d; want %d", i, m.Number, i+1)
		}
		if !reflect.DeepEqual(m.Player1, pl.Slots[2*i]) ||
			!reflect.DeepEqual(m.Player2, pl.Slots[2*i+1]) {
			t.Errorf("match %d does not pair slots %d and %d", m.Number,
				2*i, 2*i+1)
		}
	}
}

func TestBuildRound1ByeAdvances(t *testing.T) {
	slots := []Participant{
		{Name: "Alice", Seed: 1},
		Bye(),
		Bye(),
		{Name: "Bob", Seed: 4},
	}

	rd := BuildRound1(slots)
	if rd.Matches[0].Winner == nil || rd.Matches[0].Winner.Name != "Alice" {
		t.Errorf("match 1 winner = %v; want Alice", rd.Matches[0].Winner)
	}
	if rd.Matches[1].Winner == nil || rd.Matches[1].Winner.Name != "Bob" {
		t.Errorf("match 2 winner = %v; want Bob", rd.Matches[1].Winner)
	}
}

func TestBuildRound1GenuineMatchUndecided(t *testing.T) {
	slots := []Participant{
		{Name: "Alice", Seed: 1},
		{Name: "Bob", Seed: 2},
		Bye(),
		Bye(),
	}

	rd := BuildRound1(slots)
	if rd.Matches[0].Winner != nil {
		t.Errorf("genuine match decided at build time: %v",
			rd.Matches[0].Winner)
	}
	// a double-BYE match feeds an empty round-2 slot and stays undecided
	if rd.Matches[1].Winner != nil {
		t.Errorf("double-BYE match decided: %v", rd.Matches[1].Winner)
	}
}

func TestBuildRound1Deterministic(t *testing.T) {
	pl, err := Place(makeEntrants(20), 32, testRand())
	if err != nil {
		t.Fatalf("Place returned error: %v", err)
	}
	a := BuildRound1(pl.Slots)
	b := BuildRound1(pl.Slots)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("BuildRound1 is not deterministic over a fixed slot array")
	}
}
