package records

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
	"github.com/athletetrack/athletetrack/internal/utils"
)

// CreateMetricMsg asks the root model to POST a new metric.
type CreateMetricMsg struct {
	Metric models.PerformanceMetric
}

type metricForm struct {
	Type  models.MetricType
	Value string
	Unit  string
	Date  string
	Notes string
}

func defaultMetricForm(now time.Time) *metricForm {
	return &metricForm{
		Type: models.MetricStrength,
		Unit: models.UnitsFor(models.MetricStrength)[0],
		Date: utils.FormatDate(now),
	}
}

// PerformanceModel is the performance metrics page.
type PerformanceModel struct {
	records  []models.PerformanceMetric
	loading  bool
	err      error
	rng      stats.Range
	typeFlt  string
	mode     mode
	form     *huh.Form
	fm       *metricForm
	lastType models.MetricType
	pending  bool
	table    table.Model
	now      func() time.Time
}

func NewPerformance() PerformanceModel {
	return PerformanceModel{
		rng:      stats.RangeMonth,
		fm:       defaultMetricForm(time.Now()),
		lastType: models.MetricStrength,
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 12},
			{Title: "Value", Width: 10},
			{Title: "Unit", Width: 8},
			{Title: "Notes", Width: 28},
		}),
		now: time.Now,
	}
}

// Set refreshes the page from the cache's view of the metrics key.
func (m *PerformanceModel) Set(records []models.PerformanceMetric, loading bool, err error) {
	m.records = records
	m.loading = loading
	m.err = err
	m.refreshTable()
}

// SetPending marks an in-flight create so the form can't double-submit.
func (m *PerformanceModel) SetPending(p bool) { m.pending = p }

// CompleteForm closes the modal and resets its fields to declared defaults.
// Called by the root after a successful create.
func (m *PerformanceModel) CompleteForm() {
	m.mode = modeBrowse
	m.pending = false
	m.fm = defaultMetricForm(m.now())
}

// filtered returns the records matching the active range and type filter.
// Both the table rows and the summary band derive from this set.
func (m PerformanceModel) filtered() []models.PerformanceMetric {
	out := stats.FilterRange(m.records, stats.MetricDate, m.rng, m.now())
	if m.typeFlt != "" {
		out = stats.Filter(out, func(r models.PerformanceMetric) bool {
			return string(r.MetricType) == m.typeFlt
		})
	}
	return out
}

func (m PerformanceModel) visible() []models.PerformanceMetric {
	return stats.Truncate(stats.SortByDateDesc(m.filtered(), stats.MetricDate), constants.TableRowLimit)
}

func (m *PerformanceModel) refreshTable() {
	rows := []table.Row{}
	for _, r := range m.visible() {
		rows = append(rows, table.Row{
			utils.FormatDate(r.Date),
			string(r.MetricType),
			fmt.Sprintf("%g", r.Value),
			r.Unit,
			r.Notes,
		})
	}
	m.table.SetRows(rows)
}

func (m *PerformanceModel) openForm() tea.Cmd {
	m.mode = modeForm
	m.form = newMetricForm(m.fm)
	return m.form.Init()
}

func newMetricForm(fm *metricForm) *huh.Form {
	s := schema.Metric()
	value, _ := s.Field("value")
	date, _ := s.Field("date")

	typeOptions := make([]huh.Option[models.MetricType], len(models.MetricTypes))
	for i, t := range models.MetricTypes {
		typeOptions[i] = huh.NewOption(string(t), t)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.MetricType]().
				Title("Metric type").
				Options(typeOptions...).
				Value(&fm.Type),
			huh.NewInput().
				Title("Value").
				Value(&fm.Value).
				Validate(value.Validate),
			huh.NewInput().
				Title("Unit").
				Value(&fm.Unit).
				Validate(func(s string) error {
					if !models.ValidUnit(fm.Type, s) {
						return fmt.Errorf("unit must be one of: %v", models.UnitsFor(fm.Type))
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(date.Validate),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m PerformanceModel) Update(msg tea.Msg) (PerformanceModel, tea.Cmd) {
	if m.mode == modeForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return m, m.openForm()
		case "r":
			m.rng = nextRange(m.rng)
			m.refreshTable()
			return m, nil
		case "f":
			options := make([]string, len(models.MetricTypes))
			for i, t := range models.MetricTypes {
				options[i] = string(t)
			}
			m.typeFlt = nextFilter(m.typeFlt, options)
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PerformanceModel) updateForm(msg tea.Msg) (PerformanceModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeBrowse
		m.pending = false
		return m, nil
	}

	// Track the type select so the unit default follows it.
	if m.fm.Type != m.lastType {
		m.lastType = m.fm.Type
		m.fm.Unit = models.UnitsFor(m.fm.Type)[0]
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		m.mode = modeBrowse
		m.pending = false
		return m, cmd
	}

	if m.form.State == huh.StateCompleted && !m.pending {
		m.pending = true
		value, _ := schema.CoerceNumber(m.fm.Value)
		dateVal, err := schema.CoerceDate(m.fm.Date)
		if err != nil {
			dateVal = m.now()
		}
		metric := models.PerformanceMetric{
			MetricType: m.fm.Type,
			Value:      value,
			Unit:       m.fm.Unit,
			Date:       dateVal,
			Notes:      m.fm.Notes,
		}
		// Rebuilt so the values stay editable if the create fails.
		m.form = newMetricForm(m.fm)
		return m, tea.Batch(cmd, func() tea.Msg { return CreateMetricMsg{Metric: metric} }, m.form.Init())
	}

	return m, cmd
}

func (m PerformanceModel) View() string {
	if m.mode == modeForm {
		header := headerStyle.Render("Record a performance metric")
		if m.pending {
			return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View(), hintStyle.Render("Saving..."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View())
	}

	visible := m.visible()
	filtered := m.filtered()
	summary := stats.SummarizeMetrics(filtered)

	parts := []string{
		headerStyle.Render("Performance Metrics"),
		filterStyle.Render(fmt.Sprintf("%s | %s | [a]dd [r]ange [f]ilter", m.rng.Label(), filterLabel("type", m.typeFlt))),
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render("Fetch failed: "+m.err.Error()))
	}
	switch {
	case m.loading:
		parts = append(parts, emptyStyle.Render("Loading metrics..."))
	case len(visible) == 0:
		parts = append(parts, emptyStyle.Render("No metrics recorded in this range. Press 'a' to add one."))
	default:
		trend := stats.DailyTrend(filtered, stats.MetricDate,
			func(r models.PerformanceMetric) float64 { return r.Value }, rangeDays(m.rng, m.now()), m.now())
		parts = append(parts,
			summaryStyle.Render(fmt.Sprintf("%d records, average %.1f", summary.Count, summary.Average)),
			summaryStyle.Render(trendLine(trend)),
			summaryStyle.Render(breakdownLine("By type", summary.ByType, func(b stats.Bucket) string {
				return fmt.Sprintf("%s %.1f (%d)", b.Key, b.Total, b.Count)
			})),
			m.table.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
