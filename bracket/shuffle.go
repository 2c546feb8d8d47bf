/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bracket

import (
	"math/rand"
	"time"
)

// NewRand returns a PRNG suitable for placement. Tests pass their own
// fixed-seed *rand.Rand instead to make shuffles reproducible.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffle permutes participants in place via Fisher-Yates.
func shuffle(rng *rand.Rand, participants []Participant) {
	for i := len(participants) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		participants[i], participants[j] = participants[j], participants[i]
	}
}

// shuffledCopy returns a new shuffled slice, leaving the input untouched.
func shuffledCopy(rng *rand.Rand, participants []Participant) []Participant {
	out := make([]Participant, len(participants))
	copy(out, participants)
	shuffle(rng, out)
	return out
}

// perm returns a random permutation of [0, n).
func perm(rng *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
