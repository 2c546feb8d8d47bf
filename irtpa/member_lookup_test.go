/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package irtpa

import (
	"strings"
	"testing"
)

const memberCardHtml = `
<html><body>
<b>4471: EAMON de VALERA</b>
<table class="handicaps">
  <tr><th>Discipline</th><th>Handicap</th></tr>
  <tr><td>Singles</td><td>32</td></tr>
  <tr><td>Doubles</td><td>+2.5</td></tr>
</table>
</body></html>`

func TestParseMemberCard(t *testing.T) {
	member, err := parseMemberCard(4471, strings.NewReader(memberCardHtml))
	if err != nil {
		t.Fatalf("parseMemberCard returned error: %v", err)
	}

	if member.MemberID != 4471 {
		t.Errorf("MemberID = %v; want 4471", member.MemberID)
	}
	if member.Name != "Eamon de Valera" {
		t.Errorf("Name = %q; want %q", member.Name, "Eamon de Valera")
	}
	if member.SinglesHandicap == nil || *member.SinglesHandicap != 32 {
		t.Errorf("SinglesHandicap = %v; want 32", member.SinglesHandicap)
	}
	if member.DoublesHandicap == nil || *member.DoublesHandicap != -2.5 {
		t.Errorf("DoublesHandicap = %v; want -2.5 (plus player)",
			member.DoublesHandicap)
	}
}

func TestParseMemberCardNoName(t *testing.T) {
	const html = `<html><body><b>something else</b></body></html>`
	_, err := parseMemberCard(4471, strings.NewReader(html))
	if err == nil {
		t.Fatalf("expected error for card without member name")
	}
}

func TestParseHandicapText(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"32", 32, true},
		{" 45.5 ", 45.5, true},
		{"+4", -4, true},
		{"+2.5", -2.5, true},
		{"none", 0, false},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got, ok := parseHandicapText(c.in)
		if ok != c.wantOK || got != c.want {
			t.Errorf("parseHandicapText(%q) = %v, %v; want %v, %v",
				c.in, got, ok, c.want, c.wantOK)
		}
	}
}
