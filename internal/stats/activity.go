package stats

import (
	"fmt"
	"time"

	"github.com/athletetrack/athletetrack/internal/models"
)

// Activity is one line of the dashboard's recent-activity feed.
type Activity struct {
	Kind  string // "metric", "nutrition", "injury"
	Title string
	Date  time.Time
}

// RecentActivity merges the newest records of each kind into one feed, newest
// first, capped at limit entries.
func RecentActivity(metrics []models.PerformanceMetric, logs []models.NutritionLog, injuries []models.Injury, limit int) []Activity {
	feed := make([]Activity, 0, len(metrics)+len(logs)+len(injuries))
	for _, m := range metrics {
		feed = append(feed, Activity{
			Kind:  "metric",
			Title: fmt.Sprintf("Recorded %s: %g %s", m.MetricType, m.Value, m.Unit),
			Date:  m.Date,
		})
	}
	for _, n := range logs {
		feed = append(feed, Activity{
			Kind:  "nutrition",
			Title: fmt.Sprintf("Logged %s (%d kcal)", n.MealType, n.CaloriesOrZero()),
			Date:  n.Date,
		})
	}
	for _, i := range injuries {
		feed = append(feed, Activity{
			Kind:  "injury",
			Title: fmt.Sprintf("%s %s, %s", i.Severity, i.InjuryType, i.BodyPart),
			Date:  i.DateOccurred,
		})
	}
	feed = SortByDateDesc(feed, func(a Activity) time.Time { return a.Date })
	return Truncate(feed, limit)
}

// LatestRecordDate returns the newest date across all record kinds, used for
// the dashboard's last-updated label. ok is false when every list is empty.
func LatestRecordDate(metrics []models.PerformanceMetric, logs []models.NutritionLog, injuries []models.Injury, finances []models.Finance) (time.Time, bool) {
	var latest time.Time
	ok := false
	consider := func(d time.Time) {
		if !ok || d.After(latest) {
			latest = d
			ok = true
		}
	}
	for _, m := range metrics {
		consider(m.Date)
	}
	for _, n := range logs {
		consider(n.Date)
	}
	for _, i := range injuries {
		consider(i.DateOccurred)
	}
	for _, f := range finances {
		consider(f.Date)
	}
	return latest, ok
}
