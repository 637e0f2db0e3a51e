package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/session"
)

var pageTitles = map[View]string{
	ViewDashboard:   "Dashboard",
	ViewPerformance: "Performance",
	ViewNutrition:   "Nutrition",
	ViewInjuries:    "Injuries",
	ViewFinances:    "Finances",
	ViewCoach:       "AI Coach",
	ViewSettings:    "Settings",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Until rehydration answers, neither auth nor a protected page may render.
	if m.session.Phase() == session.PhaseLoading {
		return docStyle.Render(m.spinner.View() + " Connecting...")
	}

	var content string
	switch m.view {
	case ViewAuth:
		content = m.auth.View()
	case ViewDashboard:
		content = m.dash.View()
	case ViewPerformance:
		content = m.perf.View()
	case ViewNutrition:
		content = m.nutr.View()
	case ViewInjuries:
		content = m.inj.View()
	case ViewFinances:
		content = m.fin.View()
	case ViewCoach:
		content = m.coach.View()
	case ViewSettings:
		content = m.settings.View()
	case ViewNotFound:
		content = m.viewNotFound()
	}

	parts := []string{content}
	if m.session.Authenticated() {
		parts = append([]string{m.viewTabs()}, parts...)
	}
	if t := m.toast.view(); t != "" {
		parts = append(parts, t)
	}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, v := range tabOrder {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(pageTitles[v]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(pageTitles[v]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewNotFound() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"404: this page does not exist.",
		"",
		"Use ctrl+n / ctrl+p to move between pages.",
	))
}
