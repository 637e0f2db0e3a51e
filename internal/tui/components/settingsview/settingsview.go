// Package settingsview is the settings page: a profile form and the
// notification preference toggles.
package settingsview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
)

// ProfileSavedMsg reports a saved profile form so the root can toast.
type ProfileSavedMsg struct {
	Name     string
	Username string
	Email    string
}

// PreferencesSavedMsg reports saved notification preferences.
type PreferencesSavedMsg struct {
	Preferences Preferences
}

// Preferences are the notification toggles.
type Preferences struct {
	PerformanceUpdates bool
	NutritionReminders bool
	InjuryAlerts       bool
	FinancialReports   bool
	AICoachInsights    bool
}

// DefaultPreferences matches the server's defaults for a fresh account.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PerformanceUpdates: true,
		NutritionReminders: true,
		InjuryAlerts:       true,
		FinancialReports:   false,
		AICoachInsights:    true,
	}
}

type tab int

const (
	tabProfile tab = iota
	tabNotifications
)

type profileForm struct {
	Name     string
	Username string
	Email    string
}

type Model struct {
	tab     tab
	profile *profileForm
	prefs   *Preferences
	form    *huh.Form
	width   int
}

func New() Model {
	m := Model{profile: &profileForm{}, prefs: DefaultPreferences()}
	m.form = m.buildForm()
	return m
}

func (m *Model) SetWidth(w int) { m.width = w }

// SetUser seeds the profile form from the session's user.
func (m *Model) SetUser(u models.User) {
	m.profile.Name = u.Name
	m.profile.Username = u.Username
	if m.tab == tabProfile {
		m.form = m.buildForm()
	}
}

func (m Model) buildForm() *huh.Form {
	if m.tab == tabProfile {
		return newProfileForm(m.profile)
	}
	return newPreferencesForm(m.prefs)
}

func newProfileForm(fm *profileForm) *huh.Form {
	s := schema.Profile()
	name, _ := s.Field("name")
	username, _ := s.Field("username")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(name.Validate),
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(username.Validate),
			huh.NewInput().
				Title("Email").
				Value(&fm.Email),
		),
	).WithTheme(huh.ThemeDracula())
}

func newPreferencesForm(p *Preferences) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Performance updates").Value(&p.PerformanceUpdates),
			huh.NewConfirm().Title("Nutrition reminders").Value(&p.NutritionReminders),
			huh.NewConfirm().Title("Injury alerts").Value(&p.InjuryAlerts),
			huh.NewConfirm().Title("Financial reports").Value(&p.FinancialReports),
			huh.NewConfirm().Title("AI coach insights").Value(&p.AICoachInsights),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+t" {
		if m.tab == tabProfile {
			m.tab = tabNotifications
		} else {
			m.tab = tabProfile
		}
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		saved := m.savedCmd()
		m.form = m.buildForm()
		return m, tea.Batch(cmd, saved, m.form.Init())
	}

	return m, cmd
}

func (m Model) savedCmd() tea.Cmd {
	if m.tab == tabProfile {
		p := *m.profile
		return func() tea.Msg {
			return ProfileSavedMsg{Name: p.Name, Username: p.Username, Email: p.Email}
		}
	}
	prefs := *m.prefs
	return func() tea.Msg { return PreferencesSavedMsg{Preferences: prefs} }
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)
)

func (m Model) View() string {
	var tabs []string
	for i, title := range []string{"Profile", "Notifications"} {
		if m.tab == tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...)+inactiveTabStyle.Render("(ctrl+t to switch)"),
		m.form.View(),
	)
}
