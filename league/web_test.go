/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const entriesPageHtml = `
<html><body>
<table id="entries">
<thead><tr><th>#</th><th>Name</th><th>Memid</th><th>Hcp</th><th>Session</th><th>Partner</th></tr></thead>
<tbody>
<tr><td>1</td><td>SEAN MURPHY</td><td>1204</td><td>34</td><td>Day</td><td></td></tr>
<tr><td>2</td><td>Pat Keane</td><td>887</td><td>+3</td><td>Night</td><td>Sean Murphy</td></tr>
<tr><td>3</td><td></td><td></td><td></td><td></td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestParseEntriesDoc(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(entriesPageHtml))
	if err != nil {
		t.Fatalf("building document: %v", err)
	}

	entries := parseEntriesDoc(doc)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %v; want 2 (blank row skipped)", len(entries))
	}

	e := entries[0]
	if e.DisplayName() != "Sean Murphy" {
		t.Errorf("DisplayName = %q; want %q", e.DisplayName(), "Sean Murphy")
	}
	if e.MemberID != 1204 {
		t.Errorf("MemberID = %v; want 1204", e.MemberID)
	}
	if e.SinglesHandicap != "34" {
		t.Errorf("SinglesHandicap = %q; want %q", e.SinglesHandicap, "34")
	}
	if e.Availability != "Day" {
		t.Errorf("Availability = %q; want %q", e.Availability, "Day")
	}

	e = entries[1]
	if e.FirstName != "Pat" || e.LastName != "Keane" {
		t.Errorf("name split = %q/%q; want Pat/Keane", e.FirstName, e.LastName)
	}
	if e.PartnerName != "Sean Murphy" {
		t.Errorf("PartnerName = %q; want %q", e.PartnerName, "Sean Murphy")
	}
}
