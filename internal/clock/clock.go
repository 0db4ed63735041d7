// Package clock supplies the single wall-clock source for the whole
// application. Every "now"-derived default (transaction ids, timestamps,
// relative dates, quick filter windows) goes through a Clock so that all of
// them agree on the Sydney timezone.
package clock

import (
	"fmt"
	"strings"
	"time"
)

// ZoneName is the fixed timezone all defaults derive from.
const ZoneName = "Australia/Sydney"

// Clock returns the current instant in the fixed timezone.
type Clock interface {
	Now() time.Time
}

// Sydney is the production Clock, pinned to Australia/Sydney.
type Sydney struct {
	loc *time.Location
}

// NewSydney loads the fixed timezone. Fails only when the host has no tzdata
// for Australia/Sydney.
func NewSydney() (*Sydney, error) {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", ZoneName, err)
	}
	return &Sydney{loc: loc}, nil
}

// Now returns the current instant localized to Sydney.
func (c *Sydney) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the fixed timezone.
func (c *Sydney) Location() *time.Location {
	return c.loc
}

// FormatWithZone normalizes an ISO-8601 instant to the fixed timezone and
// renders it as "YYYY-MM-DD HH:MM:SS <zone>". Instants without an explicit
// offset are assumed to be UTC. Malformed input is returned unchanged; an
// empty string formats the current instant.
func (c *Sydney) FormatWithZone(value string) string {
	if strings.TrimSpace(value) == "" {
		return c.Now().Format("2006-01-02 15:04:05 MST")
	}
	t, ok := parseISOInstant(value)
	if !ok {
		return value
	}
	return t.In(c.loc).Format("2006-01-02 15:04:05 MST")
}

// iso8601 layouts accepted by FormatWithZone. Layouts without an offset are
// interpreted as UTC.
var (
	isoOffsetLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
	}
	isoNaiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

func parseISOInstant(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	for _, layout := range isoOffsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range isoNaiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (c Fixed) Now() time.Time {
	return c.Instant
}
