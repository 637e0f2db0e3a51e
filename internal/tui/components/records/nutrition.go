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

// CreateNutritionMsg asks the root model to POST a new meal log.
type CreateNutritionMsg struct {
	Log models.NutritionLog
}

// AnalyzeRequestMsg asks the root model to estimate calories and protein for
// the form's current food list.
type AnalyzeRequestMsg struct {
	FoodItems string
}

// analyzeTickMsg fires when the debounce window elapses. Only the tick whose
// seq matches the latest edit triggers a request.
type analyzeTickMsg struct {
	seq int
}

type nutritionForm struct {
	Meal     string
	Food     string
	Calories string
	Protein  string
	Date     string
	Notes    string
}

func defaultNutritionForm(now time.Time) *nutritionForm {
	return &nutritionForm{
		Meal: models.MealTypes[0],
		Date: utils.FormatDate(now),
	}
}

// NutritionModel is the meal log page.
type NutritionModel struct {
	records  []models.NutritionLog
	loading  bool
	err      error
	rng      stats.Range
	mealFlt  string
	mode     mode
	form     *huh.Form
	fm       *nutritionForm
	pending  bool
	table    table.Model
	now      func() time.Time
	lastFood string
	seq      int
	analysis *models.NutritionAnalysis
}

func NewNutrition() NutritionModel {
	return NutritionModel{
		rng: stats.RangeWeek,
		fm:  defaultNutritionForm(time.Now()),
		table: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Meal", Width: 16},
			{Title: "Calories", Width: 10},
			{Title: "Protein", Width: 9},
			{Title: "Food", Width: 30},
		}),
		now: time.Now,
	}
}

func (m *NutritionModel) Set(records []models.NutritionLog, loading bool, err error) {
	m.records = records
	m.loading = loading
	m.err = err
	m.refreshTable()
}

func (m *NutritionModel) SetPending(p bool) { m.pending = p }

// SetAnalysis stores the server's estimate. It is shown under the form and
// fills the calorie/protein fields left empty at submit.
func (m *NutritionModel) SetAnalysis(a models.NutritionAnalysis) {
	m.analysis = &a
}

func (m *NutritionModel) CompleteForm() {
	m.mode = modeBrowse
	m.pending = false
	m.fm = defaultNutritionForm(m.now())
	m.analysis = nil
	m.lastFood = ""
}

// filtered returns the records matching the active range and meal filter.
// Both the table rows and the summary band derive from this set.
func (m NutritionModel) filtered() []models.NutritionLog {
	out := stats.FilterRange(m.records, stats.NutritionDate, m.rng, m.now())
	if m.mealFlt != "" {
		out = stats.Filter(out, func(r models.NutritionLog) bool { return r.MealType == m.mealFlt })
	}
	return out
}

func (m NutritionModel) visible() []models.NutritionLog {
	return stats.Truncate(stats.SortByDateDesc(m.filtered(), stats.NutritionDate), constants.TableRowLimit)
}

func (m *NutritionModel) refreshTable() {
	rows := []table.Row{}
	for _, r := range m.visible() {
		rows = append(rows, table.Row{
			utils.FormatDate(r.Date),
			r.MealType,
			fmt.Sprintf("%d", r.CaloriesOrZero()),
			fmt.Sprintf("%dg", r.ProteinOrZero()),
			r.FoodItems,
		})
	}
	m.table.SetRows(rows)
}

func (m *NutritionModel) openForm() tea.Cmd {
	m.mode = modeForm
	m.form = newNutritionForm(m.fm)
	return m.form.Init()
}

func newNutritionForm(fm *nutritionForm) *huh.Form {
	s := schema.Nutrition()
	food, _ := s.Field("foodItems")
	calories, _ := s.Field("calories")
	protein, _ := s.Field("protein")
	date, _ := s.Field("date")

	mealOptions := make([]huh.Option[string], len(models.MealTypes))
	for i, meal := range models.MealTypes {
		mealOptions[i] = huh.NewOption(meal, meal)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Meal").
				Options(mealOptions...).
				Value(&fm.Meal),
			huh.NewText().
				Title("Food items").
				Value(&fm.Food).
				Validate(food.Validate),
			huh.NewInput().
				Title("Calories (empty to estimate)").
				Value(&fm.Calories).
				Validate(calories.Validate),
			huh.NewInput().
				Title("Protein g (empty to estimate)").
				Value(&fm.Protein).
				Validate(protein.Validate),
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

func (m NutritionModel) Update(msg tea.Msg) (NutritionModel, tea.Cmd) {
	if tick, ok := msg.(analyzeTickMsg); ok {
		if m.mode == modeForm && tick.seq == m.seq {
			food := m.fm.Food
			return m, func() tea.Msg { return AnalyzeRequestMsg{FoodItems: food} }
		}
		return m, nil
	}

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
			m.mealFlt = nextFilter(m.mealFlt, models.MealTypes)
			m.refreshTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m NutritionModel) updateForm(msg tea.Msg) (NutritionModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeBrowse
		m.pending = false
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Debounced analysis: each edit restarts the window; only the last
	// scheduled tick survives the seq check.
	if m.fm.Food != m.lastFood {
		m.lastFood = m.fm.Food
		if len(m.fm.Food) > constants.AnalyzeMinLength {
			m.seq++
			seq := m.seq
			cmds = append(cmds, tea.Tick(constants.AnalyzeDebounce, func(time.Time) tea.Msg {
				return analyzeTickMsg{seq: seq}
			}))
		}
	}

	if m.form.State == huh.StateAborted {
		m.mode = modeBrowse
		m.pending = false
		return m, tea.Batch(cmds...)
	}

	if m.form.State == huh.StateCompleted && !m.pending {
		m.pending = true
		calories, _ := schema.CoerceNullableInt(m.fm.Calories)
		protein, _ := schema.CoerceNullableInt(m.fm.Protein)
		if m.analysis != nil {
			if calories == nil {
				c := m.analysis.Calories
				calories = &c
			}
			if protein == nil {
				p := m.analysis.Protein
				protein = &p
			}
		}
		dateVal, err := schema.CoerceDate(m.fm.Date)
		if err != nil {
			dateVal = m.now()
		}
		log := models.NutritionLog{
			MealType:  m.fm.Meal,
			FoodItems: m.fm.Food,
			Calories:  calories,
			Protein:   protein,
			Date:      dateVal,
			Notes:     m.fm.Notes,
		}
		m.form = newNutritionForm(m.fm)
		cmds = append(cmds, func() tea.Msg { return CreateNutritionMsg{Log: log} }, m.form.Init())
	}

	return m, tea.Batch(cmds...)
}

func (m NutritionModel) View() string {
	if m.mode == modeForm {
		parts := []string{headerStyle.Render("Log a meal"), m.form.View()}
		if m.analysis != nil {
			parts = append(parts, hintStyle.Render(
				fmt.Sprintf("Estimated: %d kcal, %dg protein (applied to empty fields)", m.analysis.Calories, m.analysis.Protein)))
		}
		if m.pending {
			parts = append(parts, hintStyle.Render("Saving..."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	visible := m.visible()
	filtered := m.filtered()
	summary := stats.SummarizeNutrition(filtered)

	parts := []string{
		headerStyle.Render("Nutrition"),
		filterStyle.Render(fmt.Sprintf("%s | %s | [a]dd [r]ange [f]ilter", m.rng.Label(), filterLabel("meal", m.mealFlt))),
	}
	if m.err != nil {
		parts = append(parts, errStyle.Render("Fetch failed: "+m.err.Error()))
	}
	switch {
	case m.loading:
		parts = append(parts, emptyStyle.Render("Loading meals..."))
	case len(visible) == 0:
		parts = append(parts, emptyStyle.Render("No meals logged in this range. Press 'a' to add one."))
	default:
		trend := stats.DailyTrend(filtered, stats.NutritionDate,
			func(r models.NutritionLog) float64 { return float64(r.CaloriesOrZero()) }, rangeDays(m.rng, m.now()), m.now())
		byMeal := stats.Distribution(filtered,
			func(r models.NutritionLog) string { return r.MealType },
			func(r models.NutritionLog) float64 { return float64(r.CaloriesOrZero()) })
		parts = append(parts,
			summaryStyle.Render(fmt.Sprintf("%d meals, %d kcal, %dg protein", summary.Meals, summary.TotalCalories, summary.TotalProtein)),
			summaryStyle.Render(trendLine(trend)),
			summaryStyle.Render(breakdownLine("By meal", byMeal, func(b stats.Bucket) string {
				return fmt.Sprintf("%s %d kcal (%d)", b.Key, int(b.Total), b.Count)
			})),
			m.table.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
