// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"strings"
	"time"
)

// dateLayout is the wire format of every AAMVA date element.
const dateLayout = "01022006" // MMDDYYYY

// daysPerYear converts a day span into fractional years for age arithmetic.
const daysPerYear = 365.25

// parseDate parses an MMDDYYYY value into a calendar date. time.Parse
// rejects impossible dates (Feb 30, month 13) and handles leap years, but
// it tolerates some non-digit runes in numeric positions, so the digit
// check runs first.
func parseDate(value string) (time.Time, bool) {
	if len(value) != 8 || !isDigits(value) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// normalizeDate rewrites ISO-style dates (YYYY-MM-DD or YYYY/MM/DD) into
// the MMDDYYYY wire format. Values in any other shape pass through
// untouched for the field validator to judge.
func normalizeDate(value string) string {
	cleaned := strings.ReplaceAll(value, "/", "-")
	t, err := time.Parse("2006-01-02", cleaned)
	if err != nil {
		return value
	}
	return t.Format(dateLayout)
}

// yearsBetween returns the span from a to b in fractional years.
func yearsBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24 / daysPerYear
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// isPrintableASCII reports whether every byte of s lies in the 0x20-0x7E
// range the barcode payload is restricted to.
func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
