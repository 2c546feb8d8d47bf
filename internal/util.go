/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName collapses runs of whitespace and title-cases each word so
// names sourced from JSON and scraped HTML compare consistently (the league
// site is inconsistent about "JOHN DOE" vs "John Doe").
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = titleCaseWord(f)
	}
	return strings.Join(fields, " ")
}

func titleCaseWord(w string) string {
	// preserve words that already contain lowercase, e.g. "McNally"
	if strings.ToUpper(w) != w {
		return w
	}
	runes := []rune(strings.ToLower(w))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
