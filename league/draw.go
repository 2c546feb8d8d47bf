/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/mikeb26/irtpa-tdbot/bracket"
)

// Draw is a generated single-elimination draw for an event: the placed slot
// array plus the round-1 match list derived from it.
type Draw struct {
	EventID    int64
	EventTitle string
	Discipline string
	Placement  *bracket.Placement
	Round1     bracket.Round1

	source Source
}

func (d *Draw) Source() Source {
	return d.source
}

// GetEntries fetches an event's entry list from the api and the public
// entries page concurrently, preferring the api response when both succeed.
func GetEntries(eventId int64) ([]Entry, Source, error) {
	_, entries, source, err := fetchEventField(eventId)
	return entries, source, err
}

func fetchEventField(eventId int64) (EventDetail, []Entry, Source, error) {
	var wg sync.WaitGroup
	var detail EventDetail
	var webEntries []Entry
	var apiErr, webErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		detail, apiErr = GetEventDetail(eventId)
	}()
	go func() {
		defer wg.Done()
		webEntries, webErr = getEntriesViaWeb(eventId)
	}()
	wg.Wait()

	// prefer the api response
	source := SourceAPI
	entries := detail.Entries
	if apiErr != nil {
		if webErr != nil {
			return detail, nil, source, apiErr
		} // else
		source = SourceWebsite
		entries = webEntries
	}
	if len(entries) == 0 {
		return detail, nil, source,
			fmt.Errorf("event %v has no entries", eventId)
	}

	return detail, entries, source, nil
}

// GetDraw fetches an event's entries and generates a draw. bracketSize 0
// selects the smallest supported size holding the field; a nil rng uses a
// time-seeded one.
func GetDraw(eventId int64, bracketSize int, rng *rand.Rand) (*Draw, error) {
	detail, entries, source, err := fetchEventField(eventId)
	if err != nil {
		return nil, err
	}

	draw := &Draw{EventID: eventId, source: source}
	if source == SourceAPI {
		draw.EventTitle = detail.Title
		draw.Discipline = detail.Discipline
	}

	participants := EntriesToParticipants(entries)
	if bracketSize == 0 {
		var err error
		bracketSize, err = NextBracketSize(len(participants))
		if err != nil {
			return nil, err
		}
	}

	if rng == nil {
		rng = bracket.NewRand()
	}
	placement, err := bracket.Place(participants, bracketSize, rng)
	if err != nil {
		return nil, fmt.Errorf("unable to place event %v: %w", eventId, err)
	}

	draw.Placement = placement
	draw.Round1 = bracket.BuildRound1(placement.Slots)

	return draw, nil
}
