/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mikeb26/irtpa-tdbot/internal"
)

// vended by https://api.irtpa.net/api/v1/events/<eventId>
// EventDetail represents detailed information about a specific event.
type EventDetail struct {
	EventID             int       `json:"eventId"`
	Title               string    `json:"title"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	DateDisplay         string    `json:"dateDisplay"`
	Description         string    `json:"description"`
	Discipline          string    `json:"discipline"`
	IsRegistrationOpen  bool      `json:"isRegistrationOpen"`
	RegistrationEndDate time.Time `json:"registrationEndDate"`
	EntryFeeSummary     string    `json:"entryFeeSummary"`
	PrizeSummary        string    `json:"prizeSummary"`
	Venue               string    `json:"venue"`
	SessionTimes        string    `json:"sessionTimes"`
	NumEntries          int       `json:"numEntries"`
	Entries             []Entry   `json:"entries"`
}

// Entry represents a single registration entry for an event.
type Entry struct {
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	MemberID         int       `json:"memberId"`
	Availability     string    `json:"availability"`
	SinglesHandicap  string    `json:"singlesHandicap"`
	DoublesHandicap  string    `json:"doublesHandicap"`
	PartnerName      string    `json:"partnerName"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// DisplayName returns the entry's name as shown on a draw sheet.
func (e *Entry) DisplayName() string {
	return internal.NormalizeName(strings.TrimSpace(
		e.FirstName + " " + e.LastName))
}

// GetEventDetail fetches detailed event info from the league API for a given
// eventId and returns an EventDetail.
func GetEventDetail(eventId int64) (EventDetail, error) {
	url := fmt.Sprintf("https://api.irtpa.net/api/v1/events/%d", eventId)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return EventDetail{},
			fmt.Errorf("unable to fetch league event detail (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return EventDetail{},
			fmt.Errorf("unable to fetch league event detail (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return EventDetail{},
			fmt.Errorf("unable to fetch league event detail (http): %v",
				resp.StatusCode)
	}

	var detail EventDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return EventDetail{},
			fmt.Errorf("unable to parse league event detail: %w", err)
	}

	return detail, nil
}

// Custom unmarshaller for EventDetail to handle flexible date parsing.
func (ed *EventDetail) UnmarshalJSON(data []byte) error {
	type Alias EventDetail
	aux := &struct {
		StartDate           string  `json:"startDate"`
		EndDate             string  `json:"endDate"`
		RegistrationEndDate string  `json:"registrationEndDate"`
		Entries             []Entry `json:"entries"`
		*Alias
	}{
		Alias: (*Alias)(ed),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("EventDetail unmarshal: %w", err)
	}
	var err error
	ed.StartDate, err = internal.ParseDateOrZero(aux.StartDate)
	if err != nil {
		return fmt.Errorf("parsing EventDetail.StartDate: %w", err)
	}
	ed.EndDate, err = internal.ParseDateOrZero(aux.EndDate)
	if err != nil {
		return fmt.Errorf("parsing EventDetail.EndDate: %w", err)
	}
	ed.RegistrationEndDate, err = internal.ParseDateOrZero(aux.RegistrationEndDate)
	if err != nil {
		return fmt.Errorf("parsing EventDetail.RegistrationEndDate: %w", err)
	}
	// copy parsed entries
	ed.Entries = aux.Entries
	return nil
}

// Custom unmarshaller for Entry to handle flexible date parsing.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type Alias Entry
	aux := &struct {
		RegistrationDate string `json:"registrationDate"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Entry unmarshal: %w", err)
	}
	var err error
	e.RegistrationDate, err = internal.ParseDateOrZero(aux.RegistrationDate)
	if err != nil {
		return fmt.Errorf("parsing Entry.RegistrationDate: %w", err)
	}
	return nil
}
