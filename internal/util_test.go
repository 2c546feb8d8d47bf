/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
)

// TestNormalizeName verifies whitespace collapse and title casing of
// all-caps names while mixed-case names are preserved.
func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"JOHN  DOE", "John Doe"},
		{"John Doe", "John Doe"},
		{"  jane   smith ", "jane smith"},
		{"Seamus McNally", "Seamus McNally"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	for _, s := range []string{"", "null"} {
		got, err := ParseDateOrZero(s)
		if err != nil {
			t.Fatalf("ParseDateOrZero(%q) returned error: %v", s, err)
		}
		if !got.IsZero() {
			t.Errorf("ParseDateOrZero(%q) = %v; want zero time", s, got)
		}
	}

	got, err := ParseDateOrZero("2026-03-14T18:30:00")
	if err != nil {
		t.Fatalf("ParseDateOrZero returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != 3 || got.Day() != 14 {
		t.Errorf("unexpected parse result: %v", got)
	}
}
