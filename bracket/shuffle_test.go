/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestShufflePreservesEntrants(t *testing.T) {
	orig := makeEntrants(25)
	got := shuffledCopy(testRand(), orig)
	if len(got) != len(orig) {
		t.Fatalf("len = %d; want %d", len(got), len(orig))
	}

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	sort.Strings(names)
	wantNames := make([]string, len(orig))
	for i, p := range orig {
		wantNames[i] = p.Name
	}
	sort.Strings(wantNames)
	if !reflect.DeepEqual(names, wantNames) {
		t.Errorf("shuffle changed the entrant multiset")
	}
}

func TestShuffledCopyLeavesInputAlone(t *testing.T) {
	orig := makeEntrants(10)
	before := make([]Participant, len(orig))
	copy(before, orig)
	shuffledCopy(testRand(), orig)
	if !reflect.DeepEqual(orig, before) {
		t.Errorf("shuffledCopy mutated its input")
	}
}

func TestShuffleReproducible(t *testing.T) {
	a := shuffledCopy(rand.New(rand.NewSource(99)), makeEntrants(30))
	b := shuffledCopy(rand.New(rand.NewSource(99)), makeEntrants(30))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different shuffles")
	}
}

func TestPermIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 16, 64} {
		p := perm(testRand(), n)
		if len(p) != n {
			t.Fatalf("n=%d: len = %d", n, len(p))
		}
		seen := make([]bool, n)
		for _, v := range p {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("n=%d: not a permutation: %v", n, p)
			}
			seen[v] = true
		}
	}
}
