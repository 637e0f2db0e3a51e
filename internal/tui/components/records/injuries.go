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

// CreateInjuryMsg asks the root model to POST a new injury.
type CreateInjuryMsg struct {
	Injury models.Injury
}

type injuryForm struct {
	Type     string
	BodyPart string
	Severity models.Severity
	Status   models.InjuryStatus
	Date     string
	Notes    string
}

func defaultInjuryForm(now time.Time) *injuryForm {
	return &injuryForm{
		Type:     models.InjuryTypes[0],
		BodyPart: models.BodyParts[0],
		Severity: models.SeverityMild,
		Status:   models.InjuryActive,
		Date:     utils.FormatDate(now),
	}
}

// InjuriesModel is the injury tracking page.
type InjuriesModel struct {
	records   []models.Injury
	loading   bool
	err       error
	rng       stats.Range
	statusFlt string
	mode      mode
	form      *huh.Form
	fm        *injuryForm
	pending   bool
	table     table.Model
	now       func() time.Time
}

func NewInjuries() InjuriesModel {
	return InjuriesModel{
		rng: stats.RangeYear,
		fm:  defaultInjuryForm(time.Now()),
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Status", Width: 10},
			{Title: "Severity", Width: 10},
			{Title: "Type", Width: 13},
			{Title: "Body part", Width: 12},
			{Title: "Notes", Width: 22},
		}),
		now: time.Now,
	}
}

func (m *InjuriesModel) Set(records []models.Injury, loading bool, err error) {
	m.records = records
	m.loading = loading
	m.err = err
	m.refreshTable()
}

func (m *InjuriesModel) SetPending(p bool) { m.pending = p }

func (m *InjuriesModel) CompleteForm() {
	m.mode = modeBrowse
	m.pending = false
	m.fm = defaultInjuryForm(m.now())
}

// filtered returns the records matching the active range and status filter.
// Both the table rows and the summary band derive from this set.
func (m InjuriesModel) filtered() []models.Injury {
	out := stats.FilterRange(m.records, stats.InjuryDate, m.rng, m.now())
	if m.statusFlt != "" {
		out = stats.Filter(out, func(r models.Injury) bool { return string(r.Status) == m.statusFlt })
	}
	return out
}

func (m InjuriesModel) visible() []models.Injury {
	return stats.Truncate(stats.SortByDateDesc(m.filtered(), stats.InjuryDate), constants.TableRowLimit)
}

func (m *InjuriesModel) refreshTable() {
	rows := []table.Row{}
	for _, r := range m.visible() {
		rows = append(rows, table.Row{
			utils.FormatDate(r.DateOccurred),
			string(r.Status),
			string(r.Severity),
			r.InjuryType,
			r.BodyPart,
			r.Notes,
		})
	}
	m.table.SetRows(rows)
}

func (m *InjuriesModel) openForm() tea.Cmd {
	m.mode = modeForm
	m.form = newInjuryForm(m.fm)
	return m.form.Init()
}

func newInjuryForm(fm *injuryForm) *huh.Form {
	s := schema.Injury()
	date, _ := s.Field("dateOccurred")

	typeOptions := make([]huh.Option[string], len(models.InjuryTypes))
	for i, t := range models.InjuryTypes {
		typeOptions[i] = huh.NewOption(t, t)
	}
	partOptions := make([]huh.Option[string], len(models.BodyParts))
	for i, p := range models.BodyParts {
		partOptions[i] = huh.NewOption(p, p)
	}
	severityOptions := make([]huh.Option[models.Severity], len(models.Severities))
	for i, sev := range models.Severities {
		severityOptions[i] = huh.NewOption(string(sev), sev)
	}
	statusOptions := make([]huh.Option[models.InjuryStatus], len(models.InjuryStatuses))
	for i, st := range models.InjuryStatuses {
		statusOptions[i] = huh.NewOption(string(st), st)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Injury type").
				Options(typeOptions...).
				Value(&fm.Type),
			huh.NewSelect[string]().
				Title("Body part").
				Options(partOptions...).
				Value(&fm.BodyPart),
			huh.NewSelect[models.Severity]().
				Title("Severity").
				Options(severityOptions...).
				Value(&fm.Severity),
			huh.NewSelect[models.InjuryStatus]().
				Title("Status").
				Options(statusOptions...).
				Value(&fm.Status),
			huh.NewInput().
				Title("Date occurred (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(date.Validate),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m InjuriesModel) Update(msg tea.Msg) (InjuriesModel, tea.Cmd) {
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
			m.statusFlt = nextFilter(m.statusFlt, []string{string(models.InjuryActive), string(models.InjuryRecovered)})
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InjuriesModel) updateForm(msg tea.Msg) (InjuriesModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeBrowse
		m.pending = false
		return m, nil
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
		dateVal, err := schema.CoerceDate(m.fm.Date)
		if err != nil {
			dateVal = m.now()
		}
		injury := models.Injury{
			InjuryType:   m.fm.Type,
			BodyPart:     m.fm.BodyPart,
			DateOccurred: dateVal,
			Severity:     m.fm.Severity,
			Status:       m.fm.Status,
			Notes:        m.fm.Notes,
		}
		m.form = newInjuryForm(m.fm)
		return m, tea.Batch(cmd, func() tea.Msg { return CreateInjuryMsg{Injury: injury} }, m.form.Init())
	}

	return m, cmd
}

func (m InjuriesModel) View() string {
	if m.mode == modeForm {
		header := headerStyle.Render("Record an injury")
		if m.pending {
			return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View(), hintStyle.Render("Saving..."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View())
	}

	visible := m.visible()
	filtered := m.filtered()
	summary := stats.SummarizeInjuries(filtered)

	parts := []string{
		headerStyle.Render("Injuries"),
		filterStyle.Render(fmt.Sprintf("%s | %s | [a]dd [r]ange [f]ilter", m.rng.Label(), filterLabel("status", m.statusFlt))),
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render("Fetch failed: "+m.err.Error()))
	}
	switch {
	case m.loading:
		parts = append(parts, emptyStyle.Render("Loading injuries..."))
	case len(visible) == 0:
		parts = append(parts, emptyStyle.Render("No injuries recorded in this range. Press 'a' to add one."))
	default:
		trend := stats.DailyTrend(filtered, stats.InjuryDate,
			func(models.Injury) float64 { return 1 }, rangeDays(m.rng, m.now()), m.now())
		byPart := stats.Distribution(filtered,
			func(r models.Injury) string { return r.BodyPart },
			func(models.Injury) float64 { return 1 })
		parts = append(parts,
			summaryStyle.Render(fmt.Sprintf("%d active, %d recovered", summary.Active, summary.Recovered)),
			summaryStyle.Render(trendLine(trend)),
			summaryStyle.Render(breakdownLine("By body part", byPart, func(b stats.Bucket) string {
				return fmt.Sprintf("%s %d", b.Key, b.Count)
			})),
			m.table.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
