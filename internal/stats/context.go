package stats

import (
	"fmt"
	"strings"

	"github.com/athletetrack/athletetrack/internal/models"
)

// BuildAdviceContext flattens the athlete's recent history into the textual
// context the coach service expects: the newest 5 metrics and meals plus every
// injury on record.
func BuildAdviceContext(metrics []models.PerformanceMetric, logs []models.NutritionLog, injuries []models.Injury) models.AdviceContext {
	var perf []string
	for _, m := range Truncate(SortByDateDesc(metrics, MetricDate), 5) {
		perf = append(perf, fmt.Sprintf("%s: %g %s on %s", m.MetricType, m.Value, m.Unit, m.Date.Format("2006-01-02")))
	}
	var meals []string
	for _, n := range Truncate(SortByDateDesc(logs, NutritionDate), 5) {
		meals = append(meals, fmt.Sprintf("%s: %s (%d kcal, %dg protein)", n.MealType, n.FoodItems, n.CaloriesOrZero(), n.ProteinOrZero()))
	}
	var hurts []string
	for _, i := range injuries {
		hurts = append(hurts, fmt.Sprintf("%s %s (%s, %s)", i.Severity, i.InjuryType, i.BodyPart, i.Status))
	}
	return models.AdviceContext{
		PerformanceHistory: strings.Join(perf, "; "),
		NutritionLogs:      strings.Join(meals, "; "),
		Injuries:           strings.Join(hurts, "; "),
	}
}
