// Package stats holds the pure filtering and aggregation behind every list
// panel and summary card. Nothing here mutates its input or touches the
// network; callers pass records pulled from the query cache plus an explicit
// "now" so results stay reproducible.
package stats

import (
	"sort"
	"time"
)

// Range is a panel's time window selection.
type Range string

const (
	RangeWeek      Range = "7d"
	RangeMonth     Range = "30d"
	RangeQuarter   Range = "90d"
	RangeYear      Range = "365d"
	RangeThisMonth Range = "this-month"
)

// Ranges lists the selectable windows in display order.
var Ranges = []Range{RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeThisMonth}

// Label returns the human name shown on the range toggle.
func (r Range) Label() string {
	switch r {
	case RangeWeek:
		return "Last 7 days"
	case RangeMonth:
		return "Last 30 days"
	case RangeQuarter:
		return "Last 90 days"
	case RangeYear:
		return "Last year"
	case RangeThisMonth:
		return "This month"
	}
	return string(r)
}

// Window resolves the range to a [start, end] interval ending at now. The
// calendar window starts at midnight on the first of the current month.
func (r Range) Window(now time.Time) (start, end time.Time) {
	end = now
	switch r {
	case RangeWeek:
		start = now.AddDate(0, 0, -7)
	case RangeMonth:
		start = now.AddDate(0, 0, -30)
	case RangeQuarter:
		start = now.AddDate(0, 0, -90)
	case RangeYear:
		start = now.AddDate(0, 0, -365)
	case RangeThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		start = now.AddDate(0, 0, -30)
	}
	return start, end
}

// FilterRange returns the records whose date falls inside the window. The
// input slice is never modified.
func FilterRange[T any](records []T, dateOf func(T) time.Time, r Range, now time.Time) []T {
	start, end := r.Window(now)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		d := dateOf(rec)
		if !d.Before(start) && !d.After(end) {
			out = append(out, rec)
		}
	}
	return out
}

// Filter returns the records for which keep is true, preserving order.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// SortByDateDesc returns a copy sorted newest first.
func SortByDateDesc[T any](records []T, dateOf func(T) time.Time) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return dateOf(out[i]).After(dateOf(out[j]))
	})
	return out
}

// Truncate returns at most n records from the front.
func Truncate[T any](records []T, n int) []T {
	if len(records) <= n {
		return records
	}
	return records[:n]
}

// Latest returns the newest record, if any.
func Latest[T any](records []T, dateOf func(T) time.Time) (T, bool) {
	var latest T
	if len(records) == 0 {
		return latest, false
	}
	latest = records[0]
	for _, rec := range records[1:] {
		if dateOf(rec).After(dateOf(latest)) {
			latest = rec
		}
	}
	return latest, true
}

// TrendPoint is one day of an aggregated series.
type TrendPoint struct {
	Day   time.Time
	Total float64
	Count int
}

// Average returns the day's mean value, 0 for an empty day.
func (p TrendPoint) Average() float64 {
	if p.Count == 0 {
		return 0
	}
	return p.Total / float64(p.Count)
}

// DailyTrend buckets records into one point per calendar day over the last
// days days, oldest first. Days with no records stay at zero, so the series
// always has exactly days points.
func DailyTrend[T any](records []T, dateOf func(T) time.Time, valueOf func(T) float64, days int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, days)
	first := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
	for i := range points {
		points[i].Day = first.AddDate(0, 0, i)
	}
	for _, rec := range records {
		d := dateOf(rec)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
		i := int(day.Sub(first).Hours() / 24)
		if i < 0 || i >= days {
			continue
		}
		points[i].Total += valueOf(rec)
		points[i].Count++
	}
	return points
}

// Bucket is one category of a distribution.
type Bucket struct {
	Key   string
	Count int
	Total float64
}

// Distribution groups records by key and sums their values, returning buckets
// ordered by descending total (ties by key for determinism).
func Distribution[T any](records []T, keyOf func(T) string, valueOf func(T) float64) []Bucket {
	byKey := make(map[string]*Bucket)
	for _, rec := range records {
		k := keyOf(rec)
		b, ok := byKey[k]
		if !ok {
			b = &Bucket{Key: k}
			byKey[k] = b
		}
		b.Count++
		b.Total += valueOf(rec)
	}
	out := make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Delta is the percent change of current against the previous window. An
// empty previous window reports +100 for any activity and 0 for none, rather
// than dividing by zero.
func Delta(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// SplitWindows partitions records into the current window and the equal-length
// window immediately before it, for delta computation.
func SplitWindows[T any](records []T, dateOf func(T) time.Time, r Range, now time.Time) (current, previous []T) {
	start, end := r.Window(now)
	prevStart := start.Add(-end.Sub(start))
	for _, rec := range records {
		d := dateOf(rec)
		switch {
		case !d.Before(start) && !d.After(end):
			current = append(current, rec)
		case !d.Before(prevStart) && d.Before(start):
			previous = append(previous, rec)
		}
	}
	return current, previous
}
