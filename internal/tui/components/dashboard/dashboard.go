// Package dashboard composes the overview page: stats cards, the performance
// trend, today's nutrition, recent activity, the coach's insight and the
// injury and finance summaries.
package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/render"
	"github.com/athletetrack/athletetrack/internal/stats"
	"github.com/athletetrack/athletetrack/internal/utils"
)

// InsightRequestMsg asks the root model to fetch the coach's insight once the
// record data has arrived.
type InsightRequestMsg struct{}

type trendSpan int

const (
	spanWeek trendSpan = iota
	spanMonth
	spanYear
)

func (s trendSpan) days() int {
	switch s {
	case spanWeek:
		return 7
	case spanMonth:
		return 30
	default:
		return 365
	}
}

func (s trendSpan) label() string {
	switch s {
	case spanWeek:
		return "Week"
	case spanMonth:
		return "Month"
	default:
		return "Year"
	}
}

// Model is the dashboard page. All data is injected by the root model from
// the query cache.
type Model struct {
	metrics  []models.PerformanceMetric
	logs     []models.NutritionLog
	injuries []models.Injury
	finances []models.Finance
	loading  bool

	insight      *models.Advice
	insightErr   error
	insightAsked bool
	span         trendSpan
	width        int
	now          func() time.Time
}

func New() Model {
	return Model{loading: true, span: spanMonth, now: time.Now}
}

func (m *Model) SetWidth(w int) { m.width = w }

// Set refreshes the page with the cache's current view of all four resources.
// loading is true until every resource has resolved at least once.
func (m *Model) Set(metrics []models.PerformanceMetric, logs []models.NutritionLog, injuries []models.Injury, finances []models.Finance, loading bool) {
	m.metrics = metrics
	m.logs = logs
	m.injuries = injuries
	m.finances = finances
	m.loading = loading
}

// SetInsight stores the coach's insight for the card.
func (m *Model) SetInsight(a models.Advice, err error) {
	if err != nil {
		m.insightErr = err
		return
	}
	m.insight = &a
	m.insightErr = nil
}

// ResetInsight clears the card so the next visit asks again.
func (m *Model) ResetInsight() {
	m.insight = nil
	m.insightErr = nil
	m.insightAsked = false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "t" {
			m.span = (m.span + 1) % 3
			return m, nil
		}
	}

	// Ask for the insight exactly once per visit, after the data is in.
	if !m.loading && !m.insightAsked {
		m.insightAsked = true
		return m, func() tea.Msg { return InsightRequestMsg{} }
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(24)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	deltaUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	deltaDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 1, 0, 1)

	lineStyle = lipgloss.NewStyle().
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)
)

func deltaLabel(d float64) string {
	if d >= 0 {
		return deltaUpStyle.Render(fmt.Sprintf("+%.1f%%", d))
	}
	return deltaDownStyle.Render(fmt.Sprintf("%.1f%%", d))
}

func card(title, value, footer string) string {
	lines := []string{cardTitleStyle.Render(title), cardValueStyle.Render(value)}
	if footer != "" {
		lines = append(lines, footer)
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) View() string {
	if m.loading {
		return mutedStyle.Render("Loading dashboard...")
	}

	now := m.now()

	parts := []string{
		titleStyle.Render("Dashboard"),
		mutedStyle.Render("Last updated " + utils.LastUpdated(now, allDates(m)...)),
		m.viewCards(now),
		sectionStyle.Render(fmt.Sprintf("Performance trend (%s, [t] to toggle)", m.span.label())),
		m.viewTrend(now),
		sectionStyle.Render("Today's nutrition"),
		m.viewNutrition(now),
		sectionStyle.Render("Recent activity"),
		m.viewActivity(),
		sectionStyle.Render("Coach's insight"),
		m.viewInsight(),
		sectionStyle.Render("Injury tracker"),
		m.viewInjuries(),
		sectionStyle.Render("Financial summary (30 days)"),
		m.viewFinances(now),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func allDates(m Model) []time.Time {
	var dates []time.Time
	if d, ok := stats.LatestRecordDate(m.metrics, m.logs, m.injuries, m.finances); ok {
		dates = append(dates, d)
	}
	return dates
}

func (m Model) viewCards(now time.Time) string {
	latestValue := "—"
	if latest, ok := stats.Latest(m.metrics, stats.MetricDate); ok {
		latestValue = fmt.Sprintf("%g %s", latest.Value, latest.Unit)
	}

	curMetrics, prevMetrics := stats.SplitWindows(m.metrics, stats.MetricDate, stats.RangeMonth, now)
	metricDelta := stats.Delta(float64(len(curMetrics)), float64(len(prevMetrics)))

	todayCal := stats.SummarizeNutrition(stats.TodaysNutrition(m.logs, now)).TotalCalories

	injuries := stats.SummarizeInjuries(m.injuries)

	curFin, prevFin := stats.SplitWindows(m.finances, stats.FinanceDate, stats.RangeMonth, now)
	balance := stats.SummarizeFinances(curFin).Balance
	balanceDelta := stats.Delta(stats.SummarizeFinances(curFin).Balance, stats.SummarizeFinances(prevFin).Balance)

	cards := []string{
		card("Latest metric", latestValue, deltaLabel(metricDelta)+" records"),
		card("Calories today", fmt.Sprintf("%d kcal", todayCal), ""),
		card("Active injuries", fmt.Sprintf("%d", injuries.Active), fmt.Sprintf("%d recovered", injuries.Recovered)),
		card("Balance (30d)", fmt.Sprintf("%+.2f", balance), deltaLabel(balanceDelta)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) viewTrend(now time.Time) string {
	points := stats.DailyTrend(m.metrics, stats.MetricDate,
		func(r models.PerformanceMetric) float64 { return r.Value }, m.span.days(), now)
	if m.span == spanYear {
		// A year of days overflows the terminal; fold into weekly buckets.
		points = render.Compress(points, 52)
	}
	return lineStyle.Render(render.Sparkline(points))
}

func (m Model) viewNutrition(now time.Time) string {
	today := stats.TodaysNutrition(m.logs, now)
	if len(today) == 0 {
		return mutedStyle.Render("No meals logged today")
	}
	summary := stats.SummarizeNutrition(today)
	lines := []string{lineStyle.Render(fmt.Sprintf("%d meals | %d kcal | %dg protein",
		summary.Meals, summary.TotalCalories, summary.TotalProtein))}
	for _, n := range today {
		lines = append(lines, lineStyle.Render(fmt.Sprintf("  %s: %s (%d kcal)", n.MealType, n.FoodItems, n.CaloriesOrZero())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewActivity() string {
	feed := stats.RecentActivity(m.metrics, m.logs, m.injuries, 3)
	if len(feed) == 0 {
		return mutedStyle.Render("No activity yet")
	}
	var lines []string
	for _, a := range feed {
		lines = append(lines, lineStyle.Render(fmt.Sprintf("%s  (%s)", a.Title, utils.Relative(a.Date))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewInsight() string {
	switch {
	case m.insightErr != nil:
		return mutedStyle.Render("Insight unavailable: " + m.insightErr.Error())
	case m.insight == nil:
		return mutedStyle.Render("Asking the coach...")
	default:
		lines := []string{lineStyle.Render(m.insight.Advice)}
		for _, action := range m.insight.SuggestedActions {
			lines = append(lines, lineStyle.Render("  • "+action))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
}

func (m Model) viewInjuries() string {
	active := stats.Filter(m.injuries, func(i models.Injury) bool { return i.Status == models.InjuryActive })
	if len(active) == 0 {
		return mutedStyle.Render("No active injuries")
	}
	var lines []string
	for _, i := range stats.SortByDateDesc(active, stats.InjuryDate) {
		lines = append(lines, lineStyle.Render(fmt.Sprintf("%s %s (%s), %s",
			i.Severity, i.InjuryType, i.BodyPart, utils.Relative(i.DateOccurred))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewFinances(now time.Time) string {
	summary := stats.SummarizeFinances(stats.FilterRange(m.finances, stats.FinanceDate, stats.RangeMonth, now))
	return lineStyle.Render(fmt.Sprintf("Income %.2f | Expenses %.2f | Balance %+.2f",
		summary.Income, summary.Expenses, summary.Balance))
}
