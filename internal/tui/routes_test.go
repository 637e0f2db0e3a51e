package tui

import (
	"testing"

	"github.com/athletetrack/athletetrack/internal/session"
)

func TestResolveGatesBySessionPhase(t *testing.T) {
	tests := []struct {
		name   string
		target View
		phase  session.Phase
		want   View
	}{
		{"anonymous bounced off protected page", ViewPerformance, session.PhaseAnonymous, ViewAuth},
		{"anonymous bounced off dashboard", ViewDashboard, session.PhaseAnonymous, ViewAuth},
		{"anonymous may see auth", ViewAuth, session.PhaseAnonymous, ViewAuth},
		{"anonymous may see not found", ViewNotFound, session.PhaseAnonymous, ViewNotFound},
		{"authenticated skips auth screen", ViewAuth, session.PhaseAuthenticated, ViewDashboard},
		{"authenticated reaches protected page", ViewFinances, session.PhaseAuthenticated, ViewFinances},
		{"loading keeps protected target pending", ViewSettings, session.PhaseLoading, ViewSettings},
		{"loading keeps auth target pending", ViewAuth, session.PhaseLoading, ViewAuth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.target, tt.phase); got != tt.want {
				t.Errorf("resolve(%v, %v) = %v, want %v", tt.target, tt.phase, got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		phase session.Phase
		want  View
	}{
		{"empty path is the dashboard", "", session.PhaseAuthenticated, ViewDashboard},
		{"empty path still gated", "", session.PhaseAnonymous, ViewAuth},
		{"known path", "/injuries", session.PhaseAuthenticated, ViewInjuries},
		{"known path gated", "/injuries", session.PhaseAnonymous, ViewAuth},
		{"coach path", "/ai-coach", session.PhaseAuthenticated, ViewCoach},
		{"unknown path", "/no-such-page", session.PhaseAuthenticated, ViewNotFound},
		{"unknown path while anonymous", "/no-such-page", session.PhaseAnonymous, ViewNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePath(tt.path, tt.phase); got != tt.want {
				t.Errorf("resolvePath(%q, %v) = %v, want %v", tt.path, tt.phase, got, tt.want)
			}
		})
	}
}

func TestProtected(t *testing.T) {
	if protected(ViewAuth) {
		t.Error("auth view should not be protected")
	}
	if protected(ViewNotFound) {
		t.Error("not-found view should not be protected")
	}
	for _, v := range tabOrder {
		if !protected(v) {
			t.Errorf("view %v should be protected", v)
		}
	}
}
