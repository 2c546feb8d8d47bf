/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package irtpa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/irtpa-tdbot/internal"
)

type MemID int

// Member holds information about an IRTPA member. Handicaps are nil when
// the member has none on record for that discipline; a negative value
// denotes a plus player.
type Member struct {
	MemberID        MemID
	Name            string
	Club            string
	SinglesHandicap *float64
	DoublesHandicap *float64
}

// apiMemberResponse represents the JSON response from the member API
// endpoint.
type apiMemberResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Club      string `json:"club"`
	Handicaps []struct {
		Value      float64 `json:"value"`
		Discipline string  `json:"discipline"`
	} `json:"handicaps"`
}

// FetchMember retrieves member information for the given IRTPA member number
// using the members API (https://api.irtpa.net/api/v1/members/). When the
// API is unavailable it falls back to scraping the member's card on the
// public site.
func (client *Client) FetchMember(ctx context.Context,
	memberID MemID) (*Member, error) {

	member, apiErr := client.fetchMemberFromApi(ctx, memberID)
	if apiErr == nil {
		return member, nil
	}

	member, webErr := client.fetchMemberFromWeb(ctx, memberID)
	if webErr != nil {
		return nil, fmt.Errorf("fetching member %v: api: %v: web: %w",
			memberID, apiErr, webErr)
	}

	return member, nil
}

func (client *Client) fetchMemberFromApi(ctx context.Context,
	memberID MemID) (*Member, error) {

	endpoint := fmt.Sprintf("https://api.irtpa.net/api/v1/members/%v",
		memberID)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating member request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing member HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected member status %d: %s",
			resp.StatusCode, string(body))
	}

	var memberData apiMemberResponse
	if err := json.NewDecoder(resp.Body).Decode(&memberData); err != nil {
		return nil, fmt.Errorf("decoding member JSON: %w", err)
	}

	member := &Member{
		MemberID: memberID,
		Name: internal.NormalizeName(memberData.FirstName + " " +
			memberData.LastName),
		Club: memberData.Club,
	}
	for _, h := range memberData.Handicaps {
		h := h
		switch h.Discipline {
		case "S":
			member.SinglesHandicap = &h.Value
		case "D":
			member.DoublesHandicap = &h.Value
		}
	}

	return member, nil
}

func (client *Client) fetchMemberFromWeb(ctx context.Context,
	memberID MemID) (*Member, error) {

	endpoint := fmt.Sprintf("https://www.irtpa.net/members/%v", memberID)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating member card request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing member card HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected member card status %d",
			resp.StatusCode)
	}

	return parseMemberCard(memberID, resp.Body)
}

// parseMemberCard parses a member card page. The card shows the member's
// name in a bold tag of the form "<b>memberID: NAME</b>" and their
// handicaps in a two-column table keyed by discipline.
func parseMemberCard(memberID MemID, body io.Reader) (*Member, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	member := &Member{MemberID: memberID}
	member.Name = parseMemberName(memberID, doc)
	if member.Name == "" {
		return nil, fmt.Errorf("member name not found in card for %v",
			memberID)
	}

	doc.Find("table.handicaps tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.Find("td")
		if tds.Length() < 2 {
			return
		}
		label := strings.ToLower(strings.TrimSpace(tds.Eq(0).Text()))
		value, ok := parseHandicapText(tds.Eq(1).Text())
		if !ok {
			return
		}
		switch {
		case strings.HasPrefix(label, "singles"):
			member.SinglesHandicap = &value
		case strings.HasPrefix(label, "doubles"):
			member.DoublesHandicap = &value
		}
	})

	return member, nil
}

// parseMemberName finds the member's name in a bold tag:
// "<b>memberID: NAME</b>".
func parseMemberName(memberID MemID, doc *goquery.Document) string {
	name := ""
	doc.Find("b").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		prefix := fmt.Sprintf("%v:", memberID)
		if strings.HasPrefix(text, prefix) {
			name = strings.TrimSpace(strings.TrimPrefix(text, prefix))
			name = internal.NormalizeName(name)
			return false // stop iteration
		}
		return true // continue
	})
	return name
}

// parseHandicapText converts a displayed handicap to its stored form: plus
// players appear as "+N" on the card and are stored negative.
func parseHandicapText(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "none") {
		return 0, false
	}
	plus := strings.HasPrefix(text, "+")
	if plus {
		text = strings.TrimPrefix(text, "+")
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if plus {
		value = -value
	}
	return value, true
}
