package clock

import (
	"testing"
	"time"
)

func TestNewSydney(t *testing.T) {
	c, err := NewSydney()
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if got := c.Now().Location().String(); got != ZoneName {
		t.Fatalf("expected %s, got %s", ZoneName, got)
	}
}

func TestFormatWithZone(t *testing.T) {
	c, err := NewSydney()
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}

	cases := []struct {
		in   string
		want string
	}{
		// explicit offset is honored
		{"2024-07-15T04:30:22+00:00", "2024-07-15 14:30:22 AEST"},
		{"2024-07-15T04:30:22Z", "2024-07-15 14:30:22 AEST"},
		// no offset means UTC
		{"2024-07-15T04:30:22", "2024-07-15 14:30:22 AEST"},
		// DST half of the year renders AEDT
		{"2024-01-15T04:30:22Z", "2024-01-15 15:30:22 AEDT"},
		// malformed input comes back unchanged
		{"not a timestamp", "not a timestamp"},
		{"2024-13-40T99:00:00", "2024-13-40T99:00:00"},
	}
	for i, tc := range cases {
		if got := c.FormatWithZone(tc.in); got != tc.want {
			t.Fatalf("case %d: expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestFormatWithZoneEmptyUsesNow(t *testing.T) {
	c, err := NewSydney()
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	got := c.FormatWithZone("")
	if _, perr := time.Parse("2006-01-02 15:04:05 MST", got); perr != nil {
		t.Fatalf("expected a formatted instant, got %q (%v)", got, perr)
	}
}

func TestFixed(t *testing.T) {
	instant := time.Date(2024, 7, 15, 14, 30, 22, 0, time.UTC)
	c := Fixed{Instant: instant}
	if !c.Now().Equal(instant) {
		t.Fatalf("expected pinned instant, got %v", c.Now())
	}
}
