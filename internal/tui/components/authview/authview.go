// Package authview renders the public login/register screen. Submissions are
// emitted as messages; the root model owns the actual API calls.
package authview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
)

// LoginSubmitMsg carries validated login credentials to the root model.
type LoginSubmitMsg struct {
	Credentials models.Credentials
}

// RegisterSubmitMsg carries a validated registration to the root model.
type RegisterSubmitMsg struct {
	Registration models.Registration
}

type tab int

const (
	tabLogin tab = iota
	tabRegister
)

type loginForm struct {
	Username string
	Password string
}

type registerForm struct {
	Username string
	Password string
	Name     string
	Role     string
	Weight   string
	Calories string
	Height   string
	Age      string
	Gender   string
	Activity string
	Agree    bool
}

func defaultRegisterForm() *registerForm {
	return &registerForm{Role: "athlete"}
}

type Model struct {
	tab      tab
	login    *loginForm
	register *registerForm
	form     *huh.Form
	pending  bool
	width    int
}

func New() Model {
	m := Model{}
	m.login = &loginForm{}
	m.register = defaultRegisterForm()
	m.form = m.buildForm()
	return m
}

// SetPending disables resubmission while an auth call is in flight.
func (m *Model) SetPending(p bool) { m.pending = p }

func (m *Model) SetWidth(w int) { m.width = w }

// Reset rebuilds the active form from declared defaults. Called after a
// successful submit.
func (m *Model) Reset() {
	m.login = &loginForm{}
	m.register = defaultRegisterForm()
	m.form = m.buildForm()
}

func (m Model) buildForm() *huh.Form {
	if m.tab == tabLogin {
		return newLoginForm(m.login)
	}
	return newRegisterForm(m.register)
}

func newLoginForm(fm *loginForm) *huh.Form {
	s := schema.Login()
	username, _ := s.Field("username")
	password, _ := s.Field("password")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(username.Validate),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(password.Validate),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRegisterForm(fm *registerForm) *huh.Form {
	s := schema.Register()
	username, _ := s.Field("username")
	password, _ := s.Field("password")
	name, _ := s.Field("name")
	weight, _ := s.Field("weight")
	calories, _ := s.Field("dailyCalorieGoal")
	height, _ := s.Field("heightCm")
	age, _ := s.Field("age")
	terms, _ := s.Field("agreeTerms")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&fm.Username).
				Validate(username.Validate),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&fm.Password).
				Validate(password.Validate),
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(name.Validate),
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Athlete", "athlete"),
					huh.NewOption("Coach", "coach"),
				).
				Value(&fm.Role),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Value(&fm.Weight).
				Validate(weight.Validate),
			huh.NewInput().
				Title("Daily calorie goal").
				Value(&fm.Calories).
				Validate(calories.Validate),
			huh.NewInput().
				Title("Height (cm)").
				Value(&fm.Height).
				Validate(height.Validate),
			huh.NewInput().
				Title("Age").
				Value(&fm.Age).
				Validate(age.Validate),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Prefer not to say", ""),
					huh.NewOption("Female", "female"),
					huh.NewOption("Male", "male"),
					huh.NewOption("Non-binary", "non-binary"),
				).
				Value(&fm.Gender),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(
					huh.NewOption("Sedentary", "sedentary"),
					huh.NewOption("Light", "light"),
					huh.NewOption("Moderate", "moderate"),
					huh.NewOption("Active", "active"),
					huh.NewOption("Very active", "very-active"),
				).
				Value(&fm.Activity),
			huh.NewConfirm().
				Title("Agree to the terms of service?").
				Affirmative("I agree").
				Negative("Not yet").
				Value(&fm.Agree).
				Validate(terms.ValidateBool),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+t" {
		if m.tab == tabLogin {
			m.tab = tabRegister
		} else {
			m.tab = tabLogin
		}
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.pending {
		submit := m.submitCmd()
		// Rebuild so a failed attempt can be edited and resubmitted.
		m.form = m.buildForm()
		return m, tea.Batch(cmd, submit, m.form.Init())
	}

	return m, cmd
}

func (m Model) submitCmd() tea.Cmd {
	if m.tab == tabLogin {
		creds := models.Credentials{Username: m.login.Username, Password: m.login.Password}
		return func() tea.Msg { return LoginSubmitMsg{Credentials: creds} }
	}

	weight, _ := schema.CoerceNumber(m.register.Weight)
	reg := models.Registration{
		Username:         m.register.Username,
		Password:         m.register.Password,
		Name:             m.register.Name,
		Role:             m.register.Role,
		Weight:           weight,
		DailyCalorieGoal: schema.CoerceInt(m.register.Calories, 0),
		HeightCm:         schema.CoerceInt(m.register.Height, 0),
		Age:              schema.CoerceInt(m.register.Age, 0),
		Gender:           m.register.Gender,
		ActivityLevel:    m.register.Activity,
	}
	return func() tea.Msg { return RegisterSubmitMsg{Registration: reg} }
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

func (m Model) View() string {
	tabs := []string{"Login", "Register"}
	var rendered []string
	for i, title := range tabs {
		if m.tab == tab(i) {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(title))
		}
	}

	parts := []string{
		titleStyle.Render("AthleteTrack"),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + inactiveTabStyle.Render("(ctrl+t to switch)"),
		m.form.View(),
	}
	if m.pending {
		parts = append(parts, pendingStyle.Render("Signing in..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
