package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/athletetrack/athletetrack/internal/models"
)

func TestBuildAdviceContext(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }
	intp := func(v int) *int { return &v }

	var metrics []models.PerformanceMetric
	for i := 0; i < 7; i++ {
		metrics = append(metrics, models.PerformanceMetric{
			MetricType: models.MetricStrength, Value: float64(100 + i), Unit: "kg", Date: day(i),
		})
	}
	logs := []models.NutritionLog{
		{MealType: "Lunch", FoodItems: "rice and beans", Calories: intp(600), Protein: intp(20), Date: day(1)},
		{MealType: "Dinner", FoodItems: "salmon", Date: day(2)},
	}
	injuries := []models.Injury{
		{InjuryType: "Sprain", BodyPart: "Ankle", Severity: models.SeverityMild, Status: models.InjuryActive, DateOccurred: day(0)},
	}

	ctx := BuildAdviceContext(metrics, logs, injuries)

	// Only the newest five metrics make it into the history.
	if got := strings.Count(ctx.PerformanceHistory, "Strength:"); got != 5 {
		t.Errorf("history holds %d metrics, want 5", got)
	}
	if !strings.Contains(ctx.PerformanceHistory, "Strength: 106 kg on 2026-03-07") {
		t.Errorf("history missing newest metric: %q", ctx.PerformanceHistory)
	}
	if strings.Contains(ctx.PerformanceHistory, "Strength: 100 kg") {
		t.Errorf("history should drop the oldest metrics: %q", ctx.PerformanceHistory)
	}

	if !strings.Contains(ctx.NutritionLogs, "Lunch: rice and beans (600 kcal, 20g protein)") {
		t.Errorf("meals = %q", ctx.NutritionLogs)
	}
	// Absent macros read as zero.
	if !strings.Contains(ctx.NutritionLogs, "Dinner: salmon (0 kcal, 0g protein)") {
		t.Errorf("meals = %q", ctx.NutritionLogs)
	}

	if ctx.Injuries != "Mild Sprain (Ankle, Active)" {
		t.Errorf("injuries = %q", ctx.Injuries)
	}
}

func TestBuildAdviceContextEmpty(t *testing.T) {
	ctx := BuildAdviceContext(nil, nil, nil)
	if ctx.PerformanceHistory != "" || ctx.NutritionLogs != "" || ctx.Injuries != "" {
		t.Errorf("empty history should produce empty context, got %+v", ctx)
	}
}
