/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mikeb26/irtpa-tdbot/internal"
)

// vended by https://api.irtpa.net/api/v1/events
// Event represents a summary of an event in the IRTPA league API
type Event struct {
	EventID     int       `json:"eventId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	DayOfWeek   string    `json:"dayOfWeek"`
	DateDisplay string    `json:"dateDisplay"`
	Discipline  string    `json:"discipline"`
}

// GetEvents fetches upcoming events from the league API and returns a slice
// of Event.
func GetEvents() ([]Event, error) {
	const url = "https://api.irtpa.net/api/v1/events"

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch league events (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch league events (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch league events (http): %v",
			resp.StatusCode)
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("unable to parse league events: %w", err)
	}

	return events, nil
}

// Custom unmarshaller to handle non-RFC3339 timestamps, "null", and empty
// strings.
func (e *Event) UnmarshalJSON(data []byte) error {
	type Alias Event
	aux := &struct {
		Date      string `json:"date"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Event unmarshal: %w", err)
	}
	var err error
	e.Date, err = internal.ParseDateOrZero(aux.Date)
	if err != nil {
		return fmt.Errorf("parsing Event.Date: %w", err)
	}
	e.StartDate, err = internal.ParseDateOrZero(aux.StartDate)
	if err != nil {
		return fmt.Errorf("parsing Event.StartDate: %w", err)
	}
	e.EndDate, err = internal.ParseDateOrZero(aux.EndDate)
	if err != nil {
		return fmt.Errorf("parsing Event.EndDate: %w", err)
	}
	return nil
}
