/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/irtpa-tdbot/bracket"
)

// entryToParticipant converts a registration entry into a draw participant.
func entryToParticipant(entry Entry) bracket.Participant {
	return bracket.Participant{
		Name:            entry.DisplayName(),
		Availability:    parseAvailability(entry.Availability),
		SinglesHandicap: strHandicapToFloat(entry.SinglesHandicap),
		DoublesHandicap: strHandicapToFloat(entry.DoublesHandicap),
	}
}

// parseAvailability maps the registration form's session field onto a
// bracket availability tag. The form has used "Day", "day", "D", and
// "Daytime" over the years; anything unrecognized is treated as undeclared.
func parseAvailability(s string) bracket.Availability {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day", "daytime":
		return bracket.Day
	case "n", "night", "evening":
		return bracket.Night
	}
	return bracket.AvailabilityNone
}

// strHandicapToFloat parses a handicap as entered on the registration form.
// Plus players enter e.g. "+4" and are stored negative. Empty or malformed
// values yield nil (no handicap on record).
func strHandicapToFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	plus := strings.HasPrefix(s, "+")
	if plus {
		s = strings.TrimSpace(strings.TrimPrefix(s, "+"))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if plus {
		v = -v
	}
	return &v
}

// EntriesToParticipants converts an event's registration entries into draw
// participants, preserving registration order.
func EntriesToParticipants(entries []Entry) []bracket.Participant {
	out := make([]bracket.Participant, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryToParticipant(entry))
	}
	return out
}

// NextBracketSize returns the smallest supported bracket size holding n
// entrants.
func NextBracketSize(n int) (int, error) {
	for _, size := range bracket.BracketSizes {
		if n <= size {
			return size, nil
		}
	}
	return 0, fmt.Errorf("no supported bracket size holds %v entrants", n)
}
