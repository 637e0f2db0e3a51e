// Package coach is the AI coach page: an advice tab and a training-plan tab.
// Requests are emitted as messages; the root model talks to the server and
// injects the responses back.
package coach

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/render"
	"github.com/athletetrack/athletetrack/internal/schema"
)

// AdviceSubmitMsg asks the root model for advice. The root attaches the
// athlete's record context before calling the server.
type AdviceSubmitMsg struct {
	Question string
}

// PlanSubmitMsg asks the root model to generate a training plan.
type PlanSubmitMsg struct {
	Request models.TrainingPlanRequest
}

type tab int

const (
	tabAdvice tab = iota
	tabPlan
)

type adviceForm struct {
	Question string
}

type planForm struct {
	Level       string
	Goals       string
	Constraints string
}

func defaultPlanForm() *planForm {
	return &planForm{Level: "intermediate"}
}

type Model struct {
	tab     tab
	advice  *adviceForm
	plan    *planForm
	form    *huh.Form
	pending bool
	width   int

	adviceResult *models.Advice
	planResult   *models.TrainingPlan
	resultErr    error
}

func New() Model {
	m := Model{advice: &adviceForm{}, plan: defaultPlanForm()}
	m.form = m.buildForm()
	return m
}

func (m *Model) SetWidth(w int)    { m.width = w }
func (m *Model) SetPending(p bool) { m.pending = p }

// SetAdvice injects the advice response and resets the question field.
func (m *Model) SetAdvice(a models.Advice, err error) {
	m.pending = false
	if err != nil {
		m.resultErr = err
		return
	}
	m.resultErr = nil
	m.adviceResult = &a
	m.advice = &adviceForm{}
	m.form = m.buildForm()
}

// SetPlan injects the plan response and resets the plan form to defaults.
func (m *Model) SetPlan(p models.TrainingPlan, err error) {
	m.pending = false
	if err != nil {
		m.resultErr = err
		return
	}
	m.resultErr = nil
	m.planResult = &p
	m.plan = defaultPlanForm()
	m.form = m.buildForm()
}

func (m Model) buildForm() *huh.Form {
	if m.tab == tabAdvice {
		return newAdviceForm(m.advice)
	}
	return newPlanForm(m.plan)
}

func newAdviceForm(fm *adviceForm) *huh.Form {
	s := schema.Advice()
	question, _ := s.Field("question")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Ask the coach").
				Placeholder("How can I improve my endurance without aggravating my knee?").
				Value(&fm.Question).
				Validate(question.Validate),
		),
	).WithTheme(huh.ThemeDracula())
}

func newPlanForm(fm *planForm) *huh.Form {
	s := schema.TrainingPlan()
	goals, _ := s.Field("goals")

	levelOptions := make([]huh.Option[string], len(models.FitnessLevels))
	for i, l := range models.FitnessLevels {
		levelOptions[i] = huh.NewOption(l, l)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Fitness level").
				Options(levelOptions...).
				Value(&fm.Level),
			huh.NewText().
				Title("Goals").
				Value(&fm.Goals).
				Validate(goals.Validate),
			huh.NewText().
				Title("Constraints (one per line)").
				Value(&fm.Constraints),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+t" {
		if m.tab == tabAdvice {
			m.tab = tabPlan
		} else {
			m.tab = tabAdvice
		}
		m.resultErr = nil
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.pending {
		m.pending = true
		submit := m.submitCmd()
		m.form = m.buildForm()
		return m, tea.Batch(cmd, submit, m.form.Init())
	}

	return m, cmd
}

func (m Model) submitCmd() tea.Cmd {
	if m.tab == tabAdvice {
		q := m.advice.Question
		return func() tea.Msg { return AdviceSubmitMsg{Question: q} }
	}
	req := models.TrainingPlanRequest{
		Level:       m.plan.Level,
		Goals:       m.plan.Goals,
		Constraints: splitConstraints(m.plan.Constraints),
	}
	return func() tea.Msg { return PlanSubmitMsg{Request: req} }
}

func splitConstraints(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

func (m Model) View() string {
	var tabs []string
	for i, title := range []string{"Advice", "Training Plan"} {
		if m.tab == tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + inactiveTabStyle.Render("(ctrl+t to switch)"),
		m.form.View(),
	}
	if m.pending {
		parts = append(parts, pendingStyle.Render("Consulting the coach..."))
	}
	if m.resultErr != nil {
		parts = append(parts, errStyle.Render("Coach unavailable: "+m.resultErr.Error()))
	}
	if m.tab == tabAdvice && m.adviceResult != nil {
		parts = append(parts, render.Markdown(render.AdviceMarkdown(*m.adviceResult), m.width))
	}
	if m.tab == tabPlan && m.planResult != nil {
		parts = append(parts, render.Markdown(render.PlanMarkdown(*m.planResult), m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
