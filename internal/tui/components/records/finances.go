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

// CreateFinanceMsg asks the root model to POST a new transaction.
type CreateFinanceMsg struct {
	Finance models.Finance
}

type financeForm struct {
	Category    string
	Amount      string
	Description string
	IsIncome    bool
	Date        string
}

func defaultFinanceForm(now time.Time) *financeForm {
	return &financeForm{
		Category: models.FinanceCategories[0],
		Date:     utils.FormatDate(now),
	}
}

// FinancesModel is the transactions page.
type FinancesModel struct {
	records []models.Finance
	loading bool
	err     error
	rng     stats.Range
	catFlt  string
	mode    mode
	form    *huh.Form
	fm      *financeForm
	pending bool
	table   table.Model
	now     func() time.Time
}

func NewFinances() FinancesModel {
	return FinancesModel{
		rng: stats.RangeMonth,
		fm:  defaultFinanceForm(time.Now()),
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Category", Width: 13},
			{Title: "Amount", Width: 12},
			{Title: "Description", Width: 32},
		}),
		now: time.Now,
	}
}

func (m *FinancesModel) Set(records []models.Finance, loading bool, err error) {
	m.records = records
	m.loading = loading
	m.err = err
	m.refreshTable()
}

func (m *FinancesModel) SetPending(p bool) { m.pending = p }

func (m *FinancesModel) CompleteForm() {
	m.mode = modeBrowse
	m.pending = false
	m.fm = defaultFinanceForm(m.now())
}

// filtered returns the records matching the active range and category filter.
// Both the table rows and the summary band derive from this set.
func (m FinancesModel) filtered() []models.Finance {
	out := stats.FilterRange(m.records, stats.FinanceDate, m.rng, m.now())
	if m.catFlt != "" {
		out = stats.Filter(out, func(r models.Finance) bool { return r.Category == m.catFlt })
	}
	return out
}

func (m FinancesModel) visible() []models.Finance {
	return stats.Truncate(stats.SortByDateDesc(m.filtered(), stats.FinanceDate), constants.TableRowLimit)
}

func (m *FinancesModel) refreshTable() {
	rows := []table.Row{}
	for _, r := range m.visible() {
		rows = append(rows, table.Row{
			utils.FormatDate(r.Date),
			r.Category,
			fmt.Sprintf("%+.2f", r.Signed()),
			r.Description,
		})
	}
	m.table.SetRows(rows)
}

func (m *FinancesModel) openForm() tea.Cmd {
	m.mode = modeForm
	m.form = newFinanceForm(m.fm)
	return m.form.Init()
}

func newFinanceForm(fm *financeForm) *huh.Form {
	s := schema.Finance()
	amount, _ := s.Field("amount")
	description, _ := s.Field("description")
	date, _ := s.Field("date")

	catOptions := make([]huh.Option[string], len(models.FinanceCategories))
	for i, c := range models.FinanceCategories {
		catOptions[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(catOptions...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Amount").
				Value(&fm.Amount).
				Validate(amount.Validate),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description).
				Validate(description.Validate),
			huh.NewConfirm().
				Title("Direction").
				Affirmative("Income").
				Negative("Expense").
				Value(&fm.IsIncome),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(date.Validate),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m FinancesModel) Update(msg tea.Msg) (FinancesModel, tea.Cmd) {
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
			m.catFlt = nextFilter(m.catFlt, models.FinanceCategories)
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m FinancesModel) updateForm(msg tea.Msg) (FinancesModel, tea.Cmd) {
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
		amount, _ := schema.CoerceNumber(m.fm.Amount)
		dateVal, err := schema.CoerceDate(m.fm.Date)
		if err != nil {
			dateVal = m.now()
		}
		finance := models.Finance{
			Category:    m.fm.Category,
			Amount:      amount,
			IsIncome:    m.fm.IsIncome,
			Date:        dateVal,
			Description: m.fm.Description,
		}
		m.form = newFinanceForm(m.fm)
		return m, tea.Batch(cmd, func() tea.Msg { return CreateFinanceMsg{Finance: finance} }, m.form.Init())
	}

	return m, cmd
}

func (m FinancesModel) View() string {
	if m.mode == modeForm {
		header := headerStyle.Render("Record a transaction")
		if m.pending {
			return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View(), hintStyle.Render("Saving..."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, m.form.View())
	}

	visible := m.visible()
	filtered := m.filtered()
	summary := stats.SummarizeFinances(filtered)

	parts := []string{
		headerStyle.Render("Finances"),
		filterStyle.Render(fmt.Sprintf("%s | %s | [a]dd [r]ange [f]ilter", m.rng.Label(), filterLabel("category", m.catFlt))),
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render("Fetch failed: "+m.err.Error()))
	}
	switch {
	case m.loading:
		parts = append(parts, emptyStyle.Render("Loading transactions..."))
	case len(visible) == 0:
		parts = append(parts, emptyStyle.Render("No transactions in this range. Press 'a' to add one."))
	default:
		trend := stats.DailyTrend(filtered, stats.FinanceDate,
			func(r models.Finance) float64 { return r.Amount }, rangeDays(m.rng, m.now()), m.now())
		byCategory := stats.Distribution(filtered,
			func(r models.Finance) string { return r.Category },
			func(r models.Finance) float64 { return r.Amount })
		parts = append(parts,
			summaryStyle.Render(fmt.Sprintf("Income %.2f | Expenses %.2f | Balance %+.2f",
				summary.Income, summary.Expenses, summary.Balance)),
			summaryStyle.Render(trendLine(trend)),
			summaryStyle.Render(breakdownLine("By category", byCategory, func(b stats.Bucket) string {
				return fmt.Sprintf("%s %.2f (%d)", b.Key, b.Total, b.Count)
			})),
			m.table.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
