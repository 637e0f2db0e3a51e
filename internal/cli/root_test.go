package cli

import (
	"testing"
	"time"

	"github.com/athletetrack/athletetrack/internal/schema"
)

func withFixedNow(t *testing.T, fixed time.Time) {
	t.Helper()
	old := nowFn
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = old })
}

func TestOrToday(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))

	if got := orToday(""); got != "2026-03-14" {
		t.Errorf("orToday(\"\") = %q", got)
	}
	if got := orToday("  "); got != "2026-03-14" {
		t.Errorf("orToday(blank) = %q", got)
	}
	if got := orToday("2025-01-02"); got != "2025-01-02" {
		t.Errorf("orToday should keep explicit values, got %q", got)
	}
}

func TestParseDateFlag(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, fixed)

	got, err := parseDateFlag("")
	if err != nil || !got.Equal(fixed) {
		t.Errorf("parseDateFlag(\"\") = %v, %v", got, err)
	}

	got, err = parseDateFlag("2025-06-01")
	if err != nil || got.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("parseDateFlag(date) = %v, %v", got, err)
	}

	if _, err := parseDateFlag("not-a-date"); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidationErrorsFollowDeclaredOrder(t *testing.T) {
	s := schema.Register()
	errs := s.Validate(map[string]string{"role": "athlete"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}

	want := "username is required; password is required; name is required"
	for i := 0; i < 20; i++ {
		if got := firstError(s, errs).Error(); got != want {
			t.Fatalf("firstError = %q, want %q", got, want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a; b;c", []string{"a", "b", "c"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{" ; ;\n ", nil},
		{"no rest days; dumbbells only", []string{"no rest days", "dumbbells only"}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
