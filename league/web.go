/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/irtpa-tdbot/internal"
)

type Source int

const (
	SourceAPI Source = iota
	SourceWebsite
)

func (s Source) String() string {
	if s == SourceAPI {
		return "api"
	} else if s == SourceWebsite {
		return "website"
	} else {
		return "?"
	}
}

// getEntriesViaWeb fetches an event's entry list by scraping the public
// entries page for the given eventId.
func getEntriesViaWeb(eventId int64) ([]Entry, error) {
	url := fmt.Sprintf("https://www.irtpa.net/events/%d/entries", eventId)
	doc, err := fetchDoc(url)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries page: %w", err)
	}

	entries := parseEntriesDoc(doc)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries found on page for event %v",
			eventId)
	}

	return entries, nil
}

// parseEntriesDoc extracts registration entries from the entries table in
// the document. Columns: entry number, name, member id, handicap,
// session, partner.
func parseEntriesDoc(doc *goquery.Document) []Entry {
	var entries []Entry
	doc.Find("table#entries tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 5 {
			return
		}
		name := internal.NormalizeName(strings.TrimSpace(cells.Eq(1).Text()))
		if name == "" {
			return
		}
		memberID, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))

		entry := Entry{
			MemberID:        memberID,
			SinglesHandicap: strings.TrimSpace(cells.Eq(3).Text()),
			Availability:    strings.TrimSpace(cells.Eq(4).Text()),
		}
		if cells.Length() > 5 {
			entry.PartnerName = strings.TrimSpace(cells.Eq(5).Text())
		}
		parts := strings.Fields(name)
		if len(parts) > 0 {
			entry.FirstName = parts[0]
		}
		if len(parts) > 1 {
			entry.FirstName = strings.Join(parts[:len(parts)-1], " ")
			entry.LastName = parts[len(parts)-1]
		}
		entries = append(entries, entry)
	})

	return entries
}

// fetchDoc gets the HTML document at the given URL using the configured
// User-Agent.
func fetchDoc(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
