package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Relative-date grammar. The inference scan matches "N day(s) ago" anywhere in
// free text; the authoritative input parser only honors it at the start.
var (
	daysAgoAnywhere = regexp.MustCompile(`(\d+)\s*days?\s*ago`)
	daysAgoAtStart  = regexp.MustCompile(`^(\d+)\s*days?\s*ago`)
)

// InferDateFromText scans a free-text description for a date hint relative to
// now: the tokens yesterday/today/tomorrow (in that priority order) or
// "N day(s) ago". The result is advisory; ok is false when nothing matches.
func InferDateFromText(now time.Time, text string) (date string, ok bool) {
	desc := strings.ToLower(text)

	switch {
	case strings.Contains(desc, "yesterday"):
		return now.AddDate(0, 0, -1).Format(DateLayout), true
	case strings.Contains(desc, "today"):
		return now.Format(DateLayout), true
	case strings.Contains(desc, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(DateLayout), true
	}

	if m := daysAgoAnywhere.FindStringSubmatch(desc); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return now.AddDate(0, 0, -days).Format(DateLayout), true
		}
	}
	return "", false
}

// ResolveDateInput is the authoritative parser for user-supplied date text.
// It always returns a valid YYYY-MM-DD string, resolving in order: empty
// input, the relative tokens, "N day(s) ago" at the start, a strict
// YYYY-MM-DD literal, a short Y-M-D literal with single-digit month/day, and
// finally today as the fallback for anything else.
func ResolveDateInput(now time.Time, input string) string {
	today := now.Format(DateLayout)
	if input == "" {
		return today
	}

	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "today":
		return today
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(DateLayout)
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(DateLayout)
	}

	if m := daysAgoAtStart.FindStringSubmatch(s); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return now.AddDate(0, 0, -days).Format(DateLayout)
		}
	}

	if len(s) == 10 && strings.Contains(s, "-") {
		if _, err := time.Parse(DateLayout, s); err == nil {
			return s
		}
	} else if len(s) == 8 && strings.Contains(s, "-") {
		if parts := strings.Split(s, "-"); len(parts) == 3 {
			formatted := fmt.Sprintf("%s-%s-%s", parts[0], zeroPad(parts[1]), zeroPad(parts[2]))
			if _, err := time.Parse(DateLayout, formatted); err == nil {
				return formatted
			}
		}
	}

	return today
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// DateExamples returns the canonical input examples surfaced next to date
// entry fields.
func DateExamples() []string {
	return []string{"today", "yesterday", "3 days ago", "2024-01-15"}
}

// ParseFilterDate parses a literal range-filter bound: YYYY-MM-DD or
// DD/MM/YYYY. Relative expressions are deliberately not understood here; ok
// is false for any other shape or invalid calendar value.
func ParseFilterDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	switch {
	case strings.Contains(s, "-"):
		if d, err := time.Parse(DateLayout, s); err == nil {
			return d, true
		}
	case strings.Contains(s, "/"):
		if d, err := time.Parse("02/01/2006", s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// FilterByRange returns the transactions whose stored date falls within
// [start, end] inclusive. Transactions whose date fails to parse are silently
// excluded.
func FilterByRange(transactions []Transaction, start, end time.Time) []Transaction {
	start = DateOnly(start)
	end = DateOnly(end)

	var filtered []Transaction
	for _, t := range transactions {
		d, err := time.Parse(DateLayout, t.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// DateOnly strips the time-of-day and zone, keeping only the calendar day.
// Range comparisons use this normal form on both sides.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is a convenience date range anchored at today.
type Window int

const (
	Last7Days Window = iota
	Last30Days
	MonthToDate
)

// String returns the window's display label.
func (w Window) String() string {
	switch w {
	case Last7Days:
		return "Last 7 Days"
	case Last30Days:
		return "Last 30 Days"
	case MonthToDate:
		return "This Month"
	default:
		return "Unknown"
	}
}

// QuickRange computes the window's inclusive [start, end] bounds from now.
// Last7Days spans today and the six days before it; Last30Days today and the
// 29 before; MonthToDate the first of the month through today.
func QuickRange(now time.Time, w Window) (start, end time.Time) {
	end = DateOnly(now)
	switch w {
	case Last7Days:
		start = end.AddDate(0, 0, -6)
	case Last30Days:
		start = end.AddDate(0, 0, -29)
	case MonthToDate:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		start = end
	}
	return start, end
}
