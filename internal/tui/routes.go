package tui

import (
	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/session"
)

// View identifies one screen of the application.
type View int

const (
	ViewAuth View = iota
	ViewDashboard
	ViewPerformance
	ViewNutrition
	ViewInjuries
	ViewFinances
	ViewCoach
	ViewSettings
	ViewNotFound
)

// routeTable maps client paths to views. Unknown paths resolve to NotFound.
var routeTable = map[string]View{
	constants.RouteDashboard:   ViewDashboard,
	constants.RoutePerformance: ViewPerformance,
	constants.RouteNutrition:   ViewNutrition,
	constants.RouteInjuries:    ViewInjuries,
	constants.RouteFinances:    ViewFinances,
	constants.RouteCoach:       ViewCoach,
	constants.RouteSettings:    ViewSettings,
	constants.RouteAuth:        ViewAuth,
}

// protected reports whether a view requires an authenticated session.
func protected(v View) bool {
	return v != ViewAuth && v != ViewNotFound
}

// resolve gates a navigation target on the session phase: protected targets
// bounce anonymous sessions to auth, and authenticated sessions skip the auth
// screen straight to the dashboard. While the session is still loading the
// target is kept; the router re-resolves once rehydration answers.
func resolve(target View, phase session.Phase) View {
	switch phase {
	case session.PhaseAnonymous:
		if protected(target) {
			return ViewAuth
		}
	case session.PhaseAuthenticated:
		if target == ViewAuth {
			return ViewDashboard
		}
	}
	return target
}

// resolvePath maps a path argument to its gated view.
func resolvePath(path string, phase session.Phase) View {
	if path == "" {
		return resolve(ViewDashboard, phase)
	}
	target, ok := routeTable[path]
	if !ok {
		return ViewNotFound
	}
	return resolve(target, phase)
}
