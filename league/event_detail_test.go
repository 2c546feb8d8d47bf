/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"encoding/json"
	"testing"
)

const eventDetailJson = `{
  "eventId": 311,
  "title": "Winter 3rd Class Singles",
  "startDate": "2026-01-10",
  "endDate": "null",
  "dateDisplay": "Sat Jan 10",
  "discipline": "singles",
  "isRegistrationOpen": true,
  "registrationEndDate": "2026-01-08T18:00:00",
  "entryFeeSummary": "£10",
  "venue": "Gormanston",
  "numEntries": 2,
  "entries": [
    {
      "firstName": "SEAN",
      "lastName": "MURPHY",
      "memberId": 1204,
      "availability": "Day",
      "singlesHandicap": "34",
      "registrationDate": "2025-12-28"
    },
    {
      "firstName": "Pat",
      "lastName": "Keane",
      "memberId": 887,
      "availability": "Night",
      "singlesHandicap": "+3",
      "registrationDate": ""
    }
  ]
}`

func TestEventDetailUnmarshal(t *testing.T) {
	var detail EventDetail
	if err := json.Unmarshal([]byte(eventDetailJson), &detail); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}

	if detail.EventID != 311 {
		t.Errorf("EventID = %v; want 311", detail.EventID)
	}
	if detail.StartDate.IsZero() {
		t.Error("expected StartDate to be non-zero")
	}
	if !detail.EndDate.IsZero() {
		t.Errorf("EndDate = %v; want zero for \"null\"", detail.EndDate)
	}
	if detail.RegistrationEndDate.IsZero() {
		t.Error("expected RegistrationEndDate to be non-zero")
	}
	if len(detail.Entries) != 2 {
		t.Fatalf("len(Entries) = %v; want 2", len(detail.Entries))
	}

	e := detail.Entries[0]
	if e.DisplayName() != "Sean Murphy" {
		t.Errorf("DisplayName = %q; want %q", e.DisplayName(), "Sean Murphy")
	}
	if e.RegistrationDate.IsZero() {
		t.Error("expected RegistrationDate to be non-zero")
	}
	if detail.Entries[1].RegistrationDate.IsZero() == false {
		t.Error("expected empty RegistrationDate to parse as zero")
	}
}

func TestEventUnmarshal(t *testing.T) {
	const eventJson = `{
      "eventId": 311,
      "title": "Winter 3rd Class Singles",
      "date": "2026-01-10",
      "startDate": "2026-01-10",
      "endDate": "",
      "dayOfWeek": "Saturday",
      "dateDisplay": "Sat Jan 10",
      "discipline": "singles"
    }`

	var e Event
	if err := json.Unmarshal([]byte(eventJson), &e); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if e.EventID != 311 || e.Title == "" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.Date.IsZero() || e.StartDate.IsZero() {
		t.Error("expected Date and StartDate to be non-zero")
	}
	if !e.EndDate.IsZero() {
		t.Errorf("EndDate = %v; want zero for empty string", e.EndDate)
	}
}
