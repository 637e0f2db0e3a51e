package stats

import (
	"time"

	"github.com/athletetrack/athletetrack/internal/models"
)

// Date accessors shared by the panels and the dashboard.

func MetricDate(m models.PerformanceMetric) time.Time { return m.Date }
func NutritionDate(n models.NutritionLog) time.Time   { return n.Date }
func InjuryDate(i models.Injury) time.Time            { return i.DateOccurred }
func FinanceDate(f models.Finance) time.Time          { return f.Date }

// FinanceSummary totals a filtered transaction list.
type FinanceSummary struct {
	Income   float64
	Expenses float64
	Balance  float64
}

func SummarizeFinances(records []models.Finance) FinanceSummary {
	var s FinanceSummary
	for _, f := range records {
		if f.IsIncome {
			s.Income += f.Amount
		} else {
			s.Expenses += f.Amount
		}
	}
	s.Balance = s.Income - s.Expenses
	return s
}

// InjurySummary counts a filtered injury list by status.
type InjurySummary struct {
	Active    int
	Recovered int
	Severe    int
}

func SummarizeInjuries(records []models.Injury) InjurySummary {
	var s InjurySummary
	for _, i := range records {
		switch i.Status {
		case models.InjuryActive:
			s.Active++
		case models.InjuryRecovered:
			s.Recovered++
		}
		if i.Severity == models.SeveritySevere {
			s.Severe++
		}
	}
	return s
}

// NutritionSummary totals a filtered meal list.
type NutritionSummary struct {
	Meals         int
	TotalCalories int
	TotalProtein  int
}

// AvgCaloriesPerMeal returns the mean calories across logged meals.
func (s NutritionSummary) AvgCaloriesPerMeal() float64 {
	if s.Meals == 0 {
		return 0
	}
	return float64(s.TotalCalories) / float64(s.Meals)
}

func SummarizeNutrition(records []models.NutritionLog) NutritionSummary {
	var s NutritionSummary
	for _, n := range records {
		s.Meals++
		s.TotalCalories += n.CaloriesOrZero()
		s.TotalProtein += n.ProteinOrZero()
	}
	return s
}

// MetricSummary aggregates a filtered measurement list.
type MetricSummary struct {
	Count   int
	Average float64
	ByType  []Bucket
}

func SummarizeMetrics(records []models.PerformanceMetric) MetricSummary {
	s := MetricSummary{Count: len(records)}
	var total float64
	for _, m := range records {
		total += m.Value
	}
	if s.Count > 0 {
		s.Average = total / float64(s.Count)
	}
	s.ByType = Distribution(records,
		func(m models.PerformanceMetric) string { return string(m.MetricType) },
		func(m models.PerformanceMetric) float64 { return m.Value })
	return s
}

// TodaysNutrition filters logs down to the current calendar day.
func TodaysNutrition(records []models.NutritionLog, now time.Time) []models.NutritionLog {
	return Filter(records, func(n models.NutritionLog) bool {
		y1, m1, d1 := n.Date.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	})
}
