package stats

import (
	"testing"
	"time"

	"github.com/athletetrack/athletetrack/internal/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

func finance(id int, days int, amount float64, income bool) models.Finance {
	return models.Finance{ID: id, UserID: 1, Category: "Equipment", Amount: amount, IsIncome: income, Date: daysAgo(days)}
}

func TestFilterRangeThirtyDayBalance(t *testing.T) {
	records := []models.Finance{
		finance(1, 1, 10, false),
		finance(2, 40, 20, false),
		finance(3, 100, 30, false),
	}
	filtered := FilterRange(records, FinanceDate, RangeMonth, testNow)
	if len(filtered) != 1 {
		t.Fatalf("FilterRange(30d) kept %d records, want 1", len(filtered))
	}
	s := SummarizeFinances(filtered)
	if s.Balance != -10 {
		t.Errorf("balance = %v, want -10", s.Balance)
	}
}

func TestFilterRangeDoesNotMutate(t *testing.T) {
	records := []models.Finance{
		finance(1, 1, 10, false),
		finance(2, 40, 20, false),
	}
	before := make([]models.Finance, len(records))
	copy(before, records)

	once := FilterRange(records, FinanceDate, RangeMonth, testNow)
	twice := FilterRange(once, FinanceDate, RangeMonth, testNow)

	for i := range records {
		if records[i] != before[i] {
			t.Fatalf("input mutated at %d: %+v", i, records[i])
		}
	}
	if len(once) != len(twice) {
		t.Errorf("filter not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("filter not idempotent at %d", i)
		}
	}
}

func TestFilterRangeThisMonth(t *testing.T) {
	records := []models.Finance{
		{ID: 1, Amount: 5, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Amount: 5, Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
	}
	filtered := FilterRange(records, FinanceDate, RangeThisMonth, testNow)
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("this-month kept %v, want only the March record", filtered)
	}
}

func TestDailyTrendRegularity(t *testing.T) {
	metrics := []models.PerformanceMetric{
		{MetricType: models.MetricStrength, Value: 80, Date: daysAgo(0)},
		{MetricType: models.MetricStrength, Value: 90, Date: daysAgo(0)},
		{MetricType: models.MetricStrength, Value: 70, Date: daysAgo(3)},
		{MetricType: models.MetricStrength, Value: 60, Date: daysAgo(40)}, // outside
	}
	for _, days := range []int{7, 30} {
		points := DailyTrend(metrics, MetricDate,
			func(m models.PerformanceMetric) float64 { return m.Value }, days, testNow)
		if len(points) != days {
			t.Fatalf("DailyTrend(%d) has %d points", days, len(points))
		}
		for i := 1; i < len(points); i++ {
			if points[i].Day.Sub(points[i-1].Day) != 24*time.Hour {
				t.Fatalf("DailyTrend(%d) has a gap between points %d and %d", days, i-1, i)
			}
		}
		last := points[days-1]
		if last.Total != 170 || last.Count != 2 {
			t.Errorf("today's bucket = %+v, want total 170 count 2", last)
		}
		if got := points[days-4]; got.Total != 70 {
			t.Errorf("bucket 3 days ago = %+v, want total 70", got)
		}
		empty := points[days-2]
		if empty.Total != 0 || empty.Count != 0 || empty.Average() != 0 {
			t.Errorf("empty day = %+v, want zeros", empty)
		}
	}
}

func TestDistributionOrdering(t *testing.T) {
	records := []models.Finance{
		finance(1, 1, 10, false),
		finance(2, 2, 30, false),
		finance(3, 3, 30, false),
	}
	records[1].Category = "Travel"
	records[2].Category = "Medical"
	buckets := Distribution(records,
		func(f models.Finance) string { return f.Category },
		func(f models.Finance) float64 { return f.Amount })
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets", len(buckets))
	}
	if buckets[0].Key != "Medical" || buckets[1].Key != "Travel" {
		t.Errorf("tie broken wrong: %v then %v", buckets[0].Key, buckets[1].Key)
	}
	if buckets[2].Key != "Equipment" || buckets[2].Total != 10 {
		t.Errorf("smallest bucket = %+v", buckets[2])
	}
}

func TestSortTruncateLatest(t *testing.T) {
	var records []models.Finance
	for i := 0; i < 15; i++ {
		records = append(records, finance(i+1, i, float64(i), false))
	}
	sorted := SortByDateDesc(records, FinanceDate)
	if sorted[0].ID != 1 {
		t.Errorf("newest first: got id %d", sorted[0].ID)
	}
	if records[14].ID != 15 {
		t.Error("SortByDateDesc mutated its input")
	}
	top := Truncate(sorted, 10)
	if len(top) != 10 {
		t.Errorf("Truncate kept %d", len(top))
	}

	latest, ok := Latest(records, FinanceDate)
	if !ok || latest.ID != 1 {
		t.Errorf("Latest = %+v, %v", latest, ok)
	}
	if _, ok := Latest(nil, FinanceDate); ok {
		t.Error("Latest(empty) should report no record")
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"no history no activity", 0, 0, 0},
		{"no history with activity", 10, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.current, tt.previous); got != tt.want {
				t.Errorf("Delta(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestSplitWindows(t *testing.T) {
	records := []models.Finance{
		finance(1, 5, 10, true),  // current 30d window
		finance(2, 45, 20, true), // previous window
		finance(3, 70, 30, true), // before both
	}
	current, previous := SplitWindows(records, FinanceDate, RangeMonth, testNow)
	if len(current) != 1 || current[0].ID != 1 {
		t.Errorf("current window = %+v", current)
	}
	if len(previous) != 1 || previous[0].ID != 2 {
		t.Errorf("previous window = %+v", previous)
	}
}

func TestSummaries(t *testing.T) {
	cal1, cal2 := 600, 400
	prot := 30
	logs := []models.NutritionLog{
		{MealType: "Lunch", Calories: &cal1, Protein: &prot, Date: testNow},
		{MealType: "Dinner", Calories: &cal2, Date: testNow},
		{MealType: "Supplement", Date: daysAgo(1)},
	}
	ns := SummarizeNutrition(logs)
	if ns.Meals != 3 || ns.TotalCalories != 1000 || ns.TotalProtein != 30 {
		t.Errorf("nutrition summary = %+v", ns)
	}

	today := TodaysNutrition(logs, testNow)
	if len(today) != 2 {
		t.Errorf("TodaysNutrition kept %d, want 2", len(today))
	}

	injuries := []models.Injury{
		{Status: models.InjuryActive, Severity: models.SeveritySevere},
		{Status: models.InjuryActive, Severity: models.SeverityMild},
		{Status: models.InjuryRecovered, Severity: models.SeverityModerate},
	}
	is := SummarizeInjuries(injuries)
	if is.Active != 2 || is.Recovered != 1 || is.Severe != 1 {
		t.Errorf("injury summary = %+v", is)
	}

	metrics := []models.PerformanceMetric{
		{MetricType: models.MetricStrength, Value: 100},
		{MetricType: models.MetricSpeed, Value: 20},
	}
	ms := SummarizeMetrics(metrics)
	if ms.Count != 2 || ms.Average != 60 {
		t.Errorf("metric summary = %+v", ms)
	}
	if len(ms.ByType) != 2 || ms.ByType[0].Key != "Strength" {
		t.Errorf("metric distribution = %+v", ms.ByType)
	}
}

func TestRecentActivity(t *testing.T) {
	metrics := []models.PerformanceMetric{
		{MetricType: models.MetricStrength, Value: 80, Unit: "kg", Date: daysAgo(1)},
	}
	cal := 500
	logs := []models.NutritionLog{
		{MealType: "Breakfast", Calories: &cal, Date: daysAgo(0)},
	}
	injuries := []models.Injury{
		{InjuryType: "Sprain", BodyPart: "Ankle", Severity: models.SeverityMild, DateOccurred: daysAgo(2)},
	}
	feed := RecentActivity(metrics, logs, injuries, 2)
	if len(feed) != 2 {
		t.Fatalf("feed length = %d", len(feed))
	}
	if feed[0].Kind != "nutrition" || feed[1].Kind != "metric" {
		t.Errorf("feed order = %s, %s", feed[0].Kind, feed[1].Kind)
	}
}

func TestLatestRecordDate(t *testing.T) {
	if _, ok := LatestRecordDate(nil, nil, nil, nil); ok {
		t.Error("empty records should report no date")
	}
	finances := []models.Finance{finance(1, 3, 10, false)}
	injuries := []models.Injury{{DateOccurred: daysAgo(1)}}
	got, ok := LatestRecordDate(nil, nil, injuries, finances)
	if !ok || !got.Equal(daysAgo(1)) {
		t.Errorf("LatestRecordDate = %v, %v", got, ok)
	}
}
