package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-03-14", false},
		{"2026-3-14", true},
		{"14/03/2026", true},
		{"", true},
		{"2026-13-40", true},
	}
	for _, tt := range tests {
		_, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatDate(parsed); got != "2026-03-14" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2026-03-14") {
		t.Error("valid date rejected")
	}
	if ValidateDate("yesterday") {
		t.Error("garbage accepted")
	}
}

func TestDayKey(t *testing.T) {
	noon := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	if got := DayKey(noon); got != "2026-03-14" {
		t.Errorf("DayKey = %q", got)
	}
	if DayKey(noon) != DayKey(noon.Add(2*time.Hour)) {
		t.Error("same-day timestamps should share a key")
	}
}

func TestLastUpdated(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	if got := LastUpdated(now); got != "1 day ago" {
		t.Errorf("empty fallback = %q", got)
	}
	if got := LastUpdated(now, now.Add(-2*time.Hour)); got != "2 hours ago" {
		t.Errorf("two hours = %q", got)
	}
	// The newest date wins.
	got := LastUpdated(now, now.Add(-72*time.Hour), now.Add(-2*time.Hour))
	if got != "2 hours ago" {
		t.Errorf("newest date = %q", got)
	}
}
