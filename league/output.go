/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/irtpa-tdbot/bracket"
	"github.com/mikeb26/irtpa-tdbot/irtpa"
)

// BuildEventOutput formats an EventDetail into a pretty printed string
// output
func BuildEventOutput(detail *EventDetail, boldTag string, includeTitle,
	includeUrl bool) string {

	var sb strings.Builder

	if includeTitle {
		sb.WriteString(fmt.Sprintf("%vTitle%v: %v\n", boldTag, boldTag,
			detail.Title))
	}
	if includeUrl {
		sb.WriteString(fmt.Sprintf("%vURL%v: https://www.irtpa.net/events/%d\n",
			boldTag, boldTag, detail.EventID))
	}

	sb.WriteString(fmt.Sprintf("%vEventID%v: %d [Register](https://www.irtpa.net/events/register/%v)\n",
		boldTag, boldTag, detail.EventID, detail.EventID))
	sb.WriteString(fmt.Sprintf("%vDate%v: %s\n", boldTag, boldTag,
		detail.DateDisplay))
	if detail.Discipline != "" {
		sb.WriteString(fmt.Sprintf("%vDiscipline%v: %s\n", boldTag, boldTag,
			detail.Discipline))
	}
	if detail.Venue != "" {
		sb.WriteString(fmt.Sprintf("%vVenue%v: %s\n", boldTag, boldTag,
			detail.Venue))
	}
	sb.WriteString(fmt.Sprintf("%vEntry Fee%v: %s\n", boldTag, boldTag,
		detail.EntryFeeSummary))
	if detail.PrizeSummary != "" {
		sb.WriteString(fmt.Sprintf("%vPrizes%v: %s\n", boldTag, boldTag,
			detail.PrizeSummary))
	}
	if detail.SessionTimes != "" {
		sb.WriteString(fmt.Sprintf("%vSession Times%v: %s\n", boldTag,
			boldTag, detail.SessionTimes))
	}
	sb.WriteString(fmt.Sprintf("%v[Entries](https://www.irtpa.net/events/%v/entries)%v: %v\n",
		boldTag, detail.EventID, boldTag, buildEntriesString(detail)))
	sb.WriteString(fmt.Sprintf("%vDescription%v: %s\n", boldTag, boldTag,
		detail.Description))

	return sb.String()
}

// buildEntriesString formats a pretty printed string describing the entries
func buildEntriesString(detail *EventDetail) string {
	var sb strings.Builder

	sessEntries := getEntriesBySession(detail.Entries)
	sb.WriteString(fmt.Sprintf("%v", len(detail.Entries)))
	if len(sessEntries) > 1 {
		var sessions []string
		for sess := range sessEntries {
			sessions = append(sessions, sess)
		}
		sort.Sort(SessionSorter(sessions))

		sb.WriteString(" (")
		isFirst := true
		for _, k := range sessions {
			if !isFirst {
				sb.WriteString(" ")
			} else {
				isFirst = false
			}
			sb.WriteString(fmt.Sprintf("%v:%v", k, len(sessEntries[k])))
		}
		sb.WriteString(")")
	}

	return sb.String()
}

// getEntriesBySession groups an event's entries by their declared session
// label.
func getEntriesBySession(entries []Entry) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, entry := range entries {
		label := sessionLabel(parseAvailability(entry.Availability))
		out[label] = append(out[label], entry)
	}
	return out
}

func sessionLabel(a bracket.Availability) string {
	switch a {
	case bracket.Day:
		return "Day"
	case bracket.Night:
		return "Night"
	}
	return "Undeclared"
}

// SessionSorter implements sort.Interface for session ordering: Day first,
// then Night, then Undeclared, then anything else lexicographically.
type SessionSorter []string

func (s SessionSorter) Len() int { return len(s) }

func (s SessionSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SessionSorter) Less(i, j int) bool {
	return sessionRank(s[i]) < sessionRank(s[j]) ||
		(sessionRank(s[i]) == sessionRank(s[j]) && s[i] < s[j])
}

func sessionRank(label string) int {
	switch label {
	case "Day":
		return 0
	case "Night":
		return 1
	case "Undeclared":
		return 2
	}
	return 3
}

// BuildEntriesOutput formats entries into grouped, aligned string output
func BuildEntriesOutput(detail *EventDetail) string {
	sessEntries := getEntriesBySession(detail.Entries)
	var sessions []string
	for sess := range sessEntries {
		sessions = append(sessions, sess)
	}
	sort.Sort(SessionSorter(sessions))
	var sb strings.Builder

	for _, sess := range sessions {
		list := sessEntries[sess]

		type row struct {
			player, handicap string
			memid            int
			handicapVal      float64
		}
		var rows []row
		for _, entry := range list {
			h := "none"
			hVal := 999.0
			p := entryToParticipant(entry)
			if eff, err := irtpa.EffectiveHandicap(p.SinglesHandicap,
				p.DoublesHandicap); err == nil {
				rounded := irtpa.RoundToClass(eff, detail.Title)
				h = irtpa.FormatHandicap(rounded)
				hVal = rounded
			}
			rows = append(rows, row{player: entry.DisplayName(), handicap: h,
				memid: entry.MemberID, handicapVal: hVal})
		}

		// strongest (lowest handicap) first
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].handicapVal < rows[j].handicapVal
		})

		// Compute column widths
		maxP, maxH, maxM := len("Player"), len("Handicap"), len("IRTPA memid")
		for _, r := range rows {
			if l := len(r.player); l > maxP {
				maxP = l
			}
			if l := len(r.handicap); l > maxH {
				maxH = l
			}
			if l := len(fmt.Sprintf("%v", r.memid)); l > maxM {
				maxM = l
			}
		}

		if len(sessions) > 1 {
			sb.WriteString(fmt.Sprintf("%s Session\n", sess))
		}
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Player",
			maxH, "Handicap", maxM, "IRTPA memid"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*v\n", maxP, r.player,
				maxH, r.handicap, maxM, r.memid))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// BuildDrawOutput formats a generated draw into aligned round-1 match
// output plus a structural summary.
func BuildDrawOutput(draw *Draw) string {
	var sb strings.Builder

	if draw.EventTitle != "" {
		sb.WriteString(fmt.Sprintf("%v\n", draw.EventTitle))
	}

	type row struct {
		match, p1, p2, result string
	}
	var rows []row
	for _, m := range draw.Round1.Matches {
		r := row{
			match: fmt.Sprintf("%v", m.Number),
			p1:    formatDrawPlayer(m.Player1, draw.EventTitle),
			p2:    formatDrawPlayer(m.Player2, draw.EventTitle),
		}
		if m.Winner != nil {
			r.result = fmt.Sprintf("%v advances", m.Winner.Name)
		}
		rows = append(rows, r)
	}

	maxM, maxP1, maxP2 := len("Match"), len("Player 1"), len("Player 2")
	for _, r := range rows {
		if l := len(r.match); l > maxM {
			maxM = l
		}
		if l := len(r.p1); l > maxP1 {
			maxP1 = l
		}
		if l := len(r.p2); l > maxP2 {
			maxP2 = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxM, "Match",
		maxP1, "Player 1", maxP2, "Player 2", "Result"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %s\n", maxM, r.match,
			maxP1, r.p1, maxP2, r.p2, r.result))
	}

	s := draw.Placement.Stats
	sb.WriteString(fmt.Sprintf("\n%v entrants on a %v bracket: %v play-in matches, %v byes to round 2\n",
		s.Entrants, s.BracketSize, s.PlayInMatches, s.ByesToRound2))

	return sb.String()
}

// formatDrawPlayer renders one side of a match: seed, name, and the
// class-rounded handicap when on record.
func formatDrawPlayer(p bracket.Participant, eventTitle string) string {
	if p.IsBye {
		return "BYE"
	}
	out := fmt.Sprintf("[%v] %v", p.Seed, p.Name)
	if eff, err := irtpa.EffectiveHandicap(p.SinglesHandicap,
		p.DoublesHandicap); err == nil {
		out += fmt.Sprintf(" (%v)",
			irtpa.FormatHandicap(irtpa.RoundToClass(eff, eventTitle)))
	}
	return out
}
