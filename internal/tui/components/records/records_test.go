package records

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/stats"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestCompleteFormResetsMetricDefaults(t *testing.T) {
	m := NewPerformance()
	m.now = func() time.Time { return fixedNow }
	m.mode = modeForm
	m.pending = true
	m.fm = &metricForm{Type: models.MetricSpeed, Value: "12.5", Unit: "km/h", Date: "2020-01-01", Notes: "windy"}

	m.CompleteForm()

	if m.mode != modeBrowse {
		t.Error("form should close")
	}
	if m.pending {
		t.Error("pending should clear")
	}
	want := metricForm{Type: models.MetricStrength, Unit: "kg", Date: "2026-03-14"}
	if *m.fm != want {
		t.Errorf("fm = %+v, want %+v", *m.fm, want)
	}
}

func TestCompleteFormResetsNutritionState(t *testing.T) {
	m := NewNutrition()
	m.now = func() time.Time { return fixedNow }
	m.mode = modeForm
	m.pending = true
	m.fm = &nutritionForm{Meal: "Dinner", Food: "pasta with chicken", Calories: "700", Date: "2020-01-01"}
	m.lastFood = m.fm.Food
	m.SetAnalysis(models.NutritionAnalysis{Calories: 700, Protein: 35})

	m.CompleteForm()

	want := nutritionForm{Meal: models.MealTypes[0], Date: "2026-03-14"}
	if *m.fm != want {
		t.Errorf("fm = %+v, want %+v", *m.fm, want)
	}
	if m.analysis != nil || m.lastFood != "" {
		t.Error("analysis state should reset with the form")
	}
}

func TestAnalyzeDebounce(t *testing.T) {
	m := NewNutrition()
	m.now = func() time.Time { return fixedNow }
	m.mode = modeForm
	m.form = newNutritionForm(m.fm)

	type noop struct{}

	// A short food list never schedules analysis.
	m.fm.Food = "egg"
	m, _ = m.updateForm(noop{})
	if m.seq != 0 {
		t.Fatalf("short input scheduled analysis, seq = %d", m.seq)
	}

	// Each qualifying edit restarts the window with a fresh sequence.
	m.fm.Food = "chicken and rice"
	m, cmd := m.updateForm(noop{})
	if m.seq != 1 || cmd == nil {
		t.Fatalf("edit should schedule a tick, seq = %d", m.seq)
	}
	m.fm.Food = "chicken and rice bowl"
	m, _ = m.updateForm(noop{})
	if m.seq != 2 {
		t.Fatalf("second edit should bump seq, got %d", m.seq)
	}

	// The superseded tick is ignored.
	m, cmd = m.Update(analyzeTickMsg{seq: 1})
	if cmd != nil {
		t.Fatal("stale tick should not trigger a request")
	}

	// The surviving tick asks for the final text.
	m, cmd = m.Update(analyzeTickMsg{seq: 2})
	if cmd == nil {
		t.Fatal("current tick should trigger a request")
	}
	req, ok := cmd().(AnalyzeRequestMsg)
	if !ok {
		t.Fatalf("expected AnalyzeRequestMsg, got %T", cmd())
	}
	if req.FoodItems != "chicken and rice bowl" {
		t.Errorf("request carries %q", req.FoodItems)
	}
}

func TestAnalyzeTickIgnoredOutsideForm(t *testing.T) {
	m := NewNutrition()
	m.seq = 1
	if _, cmd := m.Update(analyzeTickMsg{seq: 1}); cmd != nil {
		t.Error("tick in browse mode should be dropped")
	}
}

func TestSummaryMatchesActiveFilter(t *testing.T) {
	m := NewFinances()
	m.now = func() time.Time { return fixedNow }
	m.catFlt = "Equipment"
	m.Set([]models.Finance{
		{Category: "Equipment", Amount: 100, Date: fixedNow.AddDate(0, 0, -1), Description: "new shoes"},
		{Category: "Travel", Amount: 900, Date: fixedNow.AddDate(0, 0, -2), Description: "away meet"},
	}, false, nil)

	view := m.View()
	if !strings.Contains(view, "Expenses 100.00") {
		t.Errorf("summary should total only the filtered category:\n%s", view)
	}
	if strings.Contains(view, "900.00") {
		t.Errorf("summary should exclude filtered-out records:\n%s", view)
	}
}

func TestSummaryCountsBeyondVisibleRows(t *testing.T) {
	m := NewPerformance()
	m.now = func() time.Time { return fixedNow }
	var recs []models.PerformanceMetric
	for i := 0; i < constants.TableRowLimit+2; i++ {
		recs = append(recs, models.PerformanceMetric{
			MetricType: models.MetricStrength,
			Value:      10,
			Unit:       "kg",
			Date:       fixedNow.AddDate(0, 0, -i),
		})
	}
	m.Set(recs, false, nil)

	want := fmt.Sprintf("%d records", len(recs))
	if view := m.View(); !strings.Contains(view, want) {
		t.Errorf("summary should count past the table cutoff:\n%s", view)
	}
}

func TestBrowseViewShowsTrendAndBreakdown(t *testing.T) {
	m := NewPerformance()
	m.now = func() time.Time { return fixedNow }
	m.Set([]models.PerformanceMetric{
		{MetricType: models.MetricStrength, Value: 80, Unit: "kg", Date: fixedNow.AddDate(0, 0, -1)},
		{MetricType: models.MetricSpeed, Value: 12, Unit: "km/h", Date: fixedNow.AddDate(0, 0, -3)},
	}, false, nil)

	view := m.View()
	if !strings.Contains(view, "Trend ") {
		t.Errorf("browse view should include a trend line:\n%s", view)
	}
	if !strings.Contains(view, "By type: Strength 80.0 (1) | Speed 12.0 (1)") {
		t.Errorf("browse view should break records down by type:\n%s", view)
	}
}

func TestNutritionBreakdownByMeal(t *testing.T) {
	cal := func(n int) *int { return &n }
	m := NewNutrition()
	m.now = func() time.Time { return fixedNow }
	m.Set([]models.NutritionLog{
		{MealType: "Dinner", FoodItems: "pasta", Calories: cal(700), Date: fixedNow.AddDate(0, 0, -1)},
		{MealType: "Dinner", FoodItems: "stew", Calories: cal(600), Date: fixedNow.AddDate(0, 0, -2)},
		{MealType: "Breakfast", FoodItems: "oats", Calories: cal(300), Date: fixedNow.AddDate(0, 0, -1)},
	}, false, nil)

	if view := m.View(); !strings.Contains(view, "By meal: Dinner 1300 kcal (2) | Breakfast 300 kcal (1)") {
		t.Errorf("browse view should break calories down by meal:\n%s", view)
	}
}

func TestNextRangeCycles(t *testing.T) {
	r := stats.RangeWeek
	for i := 0; i < len(stats.Ranges); i++ {
		next := nextRange(r)
		if next == r {
			t.Fatalf("range %v did not advance", r)
		}
		r = next
	}
	if r != stats.RangeWeek {
		t.Errorf("full cycle should return to the start, got %v", r)
	}
}

func TestNextFilterCycles(t *testing.T) {
	options := []string{"Breakfast", "Lunch"}
	f := nextFilter("", options)
	if f != "Breakfast" {
		t.Errorf("first filter = %q", f)
	}
	f = nextFilter(f, options)
	if f != "Lunch" {
		t.Errorf("second filter = %q", f)
	}
	f = nextFilter(f, options)
	if f != "" {
		t.Errorf("cycle should return to no filter, got %q", f)
	}
}
