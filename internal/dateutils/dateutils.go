// Package dateutils provides the date parsing used at ingestion time. Source data mixes
// "Apr 15, 2025", "17 May, 2016", "April 15th, 2025" and ISO strings; everything is
// reduced to a canonical calendar day.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutMedium   = "Jan 2, 2006"
	DateLayoutLong     = "January 2, 2006"
	DateLayoutDayFirst = "2 Jan, 2006"
)

// zonedFormats carry an explicit offset; values are moved into the observer
// location before the calendar day is read.
var zonedFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
}

// CommonFormats is the list of wall-clock layouts tried after the zoned ones.
var CommonFormats = []string{
	DateLayoutISO,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	DateLayoutFull,
	DateLayoutMedium,
	DateLayoutLong,
	DateLayoutDayFirst,
	"2 January, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	DateLayoutEuropean,
	DateLayoutUS,
	"2006/01/02",
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	ordinal    = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)\b`)
)

// CleanDateString trims, collapses whitespace and drops English ordinal suffixes.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = whitespace.ReplaceAllString(dateStr, " ")
	return ordinal.ReplaceAllString(dateStr, "$1")
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time, the matching layout and whether that layout carries a zone.
func ParseDate(dateStr string) (time.Time, string, bool, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, "", false, fmt.Errorf("unable to parse date: empty string")
	}

	for _, layout := range zonedFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, layout, true, nil
		}
	}
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, layout, false, nil
		}
	}

	return time.Time{}, "", false, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CalendarDay parses dateStr and returns the calendar day it denotes for an observer
// in loc, as midnight UTC. Zoned timestamps are converted to loc first; wall-clock
// values are taken as already local to the observer.
func CalendarDay(dateStr string, loc *time.Location) (time.Time, error) {
	t, _, zoned, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if zoned {
		if loc == nil {
			loc = time.UTC
		}
		t = t.In(loc)
	}
	return Day(t), nil
}

// Day truncates t to midnight UTC of its own wall-clock calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same year, month and day. Zero values
// never match.
func SameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// LoadLocation resolves a timezone name, treating "" and "Local" specially.
func LoadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
