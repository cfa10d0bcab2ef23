package syntax

import (
	"regexp"
	"strconv"
	"time"
)

// Regular expressions for the accepted ISO-8601 timestamp profile:
// YYYY-MM-DD[*HH[:MM[:SS[.fff[fff]]]][+HH:MM[:SS[.ffffff]]]], where a bare
// year or year-month gets 01 filled in for the missing month/day first.
var (
	reYearOnly  = regexp.MustCompile(`^\d{4}$`)
	reYearMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)
	reISOStamp  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})` +
		`(?:.(\d{2})(?::(\d{2})(?::(\d{2})(?:\.(?:\d{3}|\d{6}))?)?)?` +
		`(?:[+-](\d{2}):(\d{2})(?::(\d{2})(?:\.\d{6})?)?)?)?$`)
)

// IsValidTimestamp reports whether the string is a proper ISO 8601 timestamp
// in the accepted profile, e.g. 2008-01-23T19:23:10+00:00. Bare years and
// year-months are accepted; partial offsets like +02 are not.
func IsValidTimestamp(timestamp string) bool {
	// Fill in a fake month/day so partial dates pass the full-date check.
	if reYearOnly.MatchString(timestamp) {
		timestamp += "-01"
	}
	if reYearMonth.MatchString(timestamp) {
		timestamp += "-01"
	}

	m := reISOStamp.FindStringSubmatch(timestamp)
	if m == nil {
		return false
	}

	year := atoi(m[1])
	month := atoi(m[2])
	day := atoi(m[3])
	if month < 1 || month > 12 {
		return false
	}
	// Reject impossible calendar dates (e.g. 2008-02-31) by round-tripping
	// through time.Date, which normalizes overflowing days.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return false
	}

	// Clock fields, when present.
	if m[4] != "" && atoi(m[4]) > 23 {
		return false
	}
	if m[5] != "" && atoi(m[5]) > 59 {
		return false
	}
	if m[6] != "" && atoi(m[6]) > 59 {
		return false
	}

	// UTC offset fields, when present. Offset magnitude must stay below 24h.
	if m[7] != "" && atoi(m[7]) > 23 {
		return false
	}
	if m[8] != "" && atoi(m[8]) > 59 {
		return false
	}
	if m[9] != "" && atoi(m[9]) > 59 {
		return false
	}

	return true
}

// atoi converts digit-only regexp captures; the patterns guarantee success.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
