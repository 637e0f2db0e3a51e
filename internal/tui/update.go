package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/logger"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/query"
	"github.com/athletetrack/athletetrack/internal/session"
	"github.com/athletetrack/athletetrack/internal/tui/components/authview"
	"github.com/athletetrack/athletetrack/internal/tui/components/coach"
	"github.com/athletetrack/athletetrack/internal/tui/components/dashboard"
	"github.com/athletetrack/athletetrack/internal/tui/components/records"
	"github.com/athletetrack/athletetrack/internal/tui/components/settingsview"
)

// Mutation tags name the originating form in MutationMsg handling.
const (
	tagMetric    = "metric"
	tagNutrition = "nutrition"
	tagInjury    = "injury"
	tagFinance   = "finance"
)

type analyzeResultMsg struct {
	analysis models.NutritionAnalysis
	err      error
}

type insightResultMsg struct {
	advice models.Advice
	err    error
}

type adviceResultMsg struct {
	advice models.Advice
	err    error
}

type planResultMsg struct {
	plan models.TrainingPlan
	err  error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.auth.SetWidth(msg.Width)
		m.dash.SetWidth(msg.Width)
		m.coach.SetWidth(msg.Width)
		m.settings.SetWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if m.session.Phase() == session.PhaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case session.RehydratedMsg:
		return m.onRehydrated(msg)

	case session.LoginResultMsg:
		return m.onLoginResult(msg)

	case session.LoggedOutMsg:
		m.session.Clear()
		m.cache.EvictAll()
		m.settings = settingsview.New()
		cmd := m.navigate(ViewAuth)
		return m, tea.Batch(cmd, m.toast.show(toastInfo, "Logged out"))

	case authview.LoginSubmitMsg:
		m.authPending = true
		m.auth.SetPending(true)
		return m, session.LoginCmd(m.client, msg.Credentials)

	case authview.RegisterSubmitMsg:
		m.authPending = true
		m.auth.SetPending(true)
		return m, session.RegisterCmd(m.client, msg.Registration)

	case query.ResultMsg:
		return m.onQueryResult(msg)

	case query.MutationMsg:
		return m.onMutation(msg)

	case records.CreateMetricMsg:
		metric := msg.Metric
		metric.UserID = m.session.User().ID
		return m, query.MutateCmd(tagMetric, func(ctx context.Context) (interface{}, error) {
			return m.client.CreateMetric(ctx, metric)
		}, m.key(constants.ResourceMetrics))

	case records.CreateNutritionMsg:
		log := msg.Log
		log.UserID = m.session.User().ID
		return m, query.MutateCmd(tagNutrition, func(ctx context.Context) (interface{}, error) {
			return m.client.CreateNutritionLog(ctx, log)
		}, m.key(constants.ResourceNutrition))

	case records.CreateInjuryMsg:
		injury := msg.Injury
		injury.UserID = m.session.User().ID
		return m, query.MutateCmd(tagInjury, func(ctx context.Context) (interface{}, error) {
			return m.client.CreateInjury(ctx, injury)
		}, m.key(constants.ResourceInjuries))

	case records.CreateFinanceMsg:
		finance := msg.Finance
		finance.UserID = m.session.User().ID
		return m, query.MutateCmd(tagFinance, func(ctx context.Context) (interface{}, error) {
			return m.client.CreateFinance(ctx, finance)
		}, m.key(constants.ResourceFinances))

	case records.AnalyzeRequestMsg:
		food := msg.FoodItems
		return m, func() tea.Msg {
			analysis, err := m.client.AnalyzeNutrition(context.Background(), food)
			return analyzeResultMsg{analysis: analysis, err: err}
		}

	case analyzeResultMsg:
		if msg.err != nil {
			// The estimate is best-effort; the form works without it.
			logger.Debug("Nutrition analysis failed", "error", msg.err)
			return m, nil
		}
		m.nutr.SetAnalysis(msg.analysis)
		return m, nil

	case dashboard.InsightRequestMsg:
		req := models.AdviceRequest{
			Question: "Give me a brief insight into my recent training based on my data.",
			Context:  m.adviceContext(),
		}
		return m, func() tea.Msg {
			advice, err := m.client.Advice(context.Background(), req)
			return insightResultMsg{advice: advice, err: err}
		}

	case insightResultMsg:
		m.dash.SetInsight(msg.advice, msg.err)
		return m, nil

	case coach.AdviceSubmitMsg:
		req := models.AdviceRequest{Question: msg.Question, Context: m.adviceContext()}
		return m, func() tea.Msg {
			advice, err := m.client.Advice(context.Background(), req)
			return adviceResultMsg{advice: advice, err: err}
		}

	case adviceResultMsg:
		if unauth := m.expireOn401(msg.err); unauth != nil {
			return m, unauth
		}
		m.coach.SetAdvice(msg.advice, msg.err)
		return m, nil

	case coach.PlanSubmitMsg:
		req := msg.Request
		return m, func() tea.Msg {
			plan, err := m.client.TrainingPlan(context.Background(), req)
			return planResultMsg{plan: plan, err: err}
		}

	case planResultMsg:
		if unauth := m.expireOn401(msg.err); unauth != nil {
			return m, unauth
		}
		m.coach.SetPlan(msg.plan, msg.err)
		return m, nil

	case settingsview.ProfileSavedMsg:
		return m, m.toast.show(toastInfo, "Profile saved")

	case settingsview.PreferencesSavedMsg:
		return m, m.toast.show(toastInfo, "Notification preferences saved")

	case tea.KeyMsg:
		if cmd, handled := m.onKey(msg); handled {
			return m, cmd
		}
	}

	return m.updateActivePage(msg)
}

// onKey handles the global bindings; everything else falls through to the
// active page.
func (m *Model) onKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil, true

	case key.Matches(msg, m.keys.Logout):
		if m.session.Authenticated() {
			return session.LogoutCmd(m.client), true
		}
		return nil, true

	case key.Matches(msg, m.keys.Refresh):
		if m.session.Authenticated() {
			for _, resource := range viewResources(m.view) {
				m.cache.InvalidateKey(m.key(resource))
			}
			return m.ensureData(m.view), true
		}
		return nil, true

	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		if !m.session.Authenticated() {
			return nil, true
		}
		step := 1
		if key.Matches(msg, m.keys.Prev) {
			step = len(tabOrder) - 1
		}
		for i, v := range tabOrder {
			if v == m.view {
				return m.navigate(tabOrder[(i+step)%len(tabOrder)]), true
			}
		}
		return m.navigate(ViewDashboard), true
	}
	return nil, false
}

func (m Model) onRehydrated(msg session.RehydratedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.session.Clear()
		var cmds []tea.Cmd
		if !errors.Is(msg.Err, api.ErrUnauthenticated) {
			cmds = append(cmds, m.toast.show(toastError, "Cannot reach the server: "+msg.Err.Error()))
		}
		m.view = resolvePath(m.initialPath, m.session.Phase())
		return m, tea.Batch(cmds...)
	}

	m.session.SetUser(msg.User)
	m.settings.SetUser(msg.User)
	m.view = resolvePath(m.initialPath, m.session.Phase())
	m.syncPages()
	return m, m.ensureData(m.view)
}

func (m Model) onLoginResult(msg session.LoginResultMsg) (tea.Model, tea.Cmd) {
	m.authPending = false
	m.auth.SetPending(false)

	if msg.Err != nil {
		text := "Login failed: " + msg.Err.Error()
		switch {
		case errors.Is(msg.Err, api.ErrInvalidCredentials):
			text = "Invalid credentials"
		case errors.Is(msg.Err, api.ErrConflict):
			text = "That username is already taken"
		}
		return m, m.toast.show(toastError, text)
	}

	// A different account may have signed in; never leak the old user's rows.
	m.cache.EvictAll()
	m.session.SetUser(msg.User)
	m.settings.SetUser(msg.User)
	m.auth.Reset()
	cmd := m.navigate(ViewDashboard)
	return m, tea.Batch(cmd, m.toast.show(toastInfo, "Welcome, "+msg.User.Username))
}

func (m Model) onQueryResult(msg query.ResultMsg) (tea.Model, tea.Cmd) {
	if unauth := m.expireOn401(msg.Err); unauth != nil {
		return m, unauth
	}
	m.cache.Apply(msg)
	m.syncPages()
	// A key invalidated mid-flight had its result discarded; re-priming the
	// active view schedules the refetch.
	cmds := []tea.Cmd{m.ensureData(m.view)}
	// Give the dashboard a pass so it can request its insight once the last
	// resource resolves.
	if m.view == ViewDashboard {
		var cmd tea.Cmd
		m.dash, cmd = m.dash.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) onMutation(msg query.MutationMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if unauth := m.expireOn401(msg.Err); unauth != nil {
			return m, unauth
		}
		m.setMutationPending(msg.Tag, false)
		return m, m.toast.show(toastError, "Save failed: "+msg.Err.Error())
	}

	for _, k := range msg.Invalidates {
		m.cache.InvalidateKey(k)
	}
	m.completeMutation(msg.Tag)
	m.syncPages()
	return m, tea.Batch(m.ensureData(m.view), m.toast.show(toastInfo, "Saved"))
}

func (m *Model) setMutationPending(tag string, pending bool) {
	switch tag {
	case tagMetric:
		m.perf.SetPending(pending)
	case tagNutrition:
		m.nutr.SetPending(pending)
	case tagInjury:
		m.inj.SetPending(pending)
	case tagFinance:
		m.fin.SetPending(pending)
	}
}

func (m *Model) completeMutation(tag string) {
	switch tag {
	case tagMetric:
		m.perf.CompleteForm()
	case tagNutrition:
		m.nutr.CompleteForm()
	case tagInjury:
		m.inj.CompleteForm()
	case tagFinance:
		m.fin.CompleteForm()
	}
}

// expireOn401 handles a mid-session 401: the session is over, whatever the
// client thought. Returns nil when the error is something else.
func (m *Model) expireOn401(err error) tea.Cmd {
	if err == nil || !errors.Is(err, api.ErrUnauthenticated) {
		return nil
	}
	if !m.session.Authenticated() {
		return nil
	}
	logger.Info("Session expired mid-use")
	m.session.Clear()
	m.cache.EvictAll()
	cmd := m.navigate(ViewAuth)
	return tea.Batch(cmd, m.toast.show(toastError, "Session expired, please log in again"))
}

func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewAuth:
		m.auth, cmd = m.auth.Update(msg)
	case ViewDashboard:
		m.dash, cmd = m.dash.Update(msg)
	case ViewPerformance:
		m.perf, cmd = m.perf.Update(msg)
	case ViewNutrition:
		m.nutr, cmd = m.nutr.Update(msg)
	case ViewInjuries:
		m.inj, cmd = m.inj.Update(msg)
	case ViewFinances:
		m.fin, cmd = m.fin.Update(msg)
	case ViewCoach:
		m.coach, cmd = m.coach.Update(msg)
	case ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}
