package render

import (
	"strings"

	"github.com/athletetrack/athletetrack/internal/stats"
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws a daily series as one rune per point, scaled against the
// series maximum. An all-zero series renders as a flat baseline.
func Sparkline(points []stats.TrendPoint) string {
	max := 0.0
	for _, p := range points {
		if p.Total > max {
			max = p.Total
		}
	}
	if max == 0 {
		return strings.Repeat("▁", len(points))
	}
	var b strings.Builder
	for _, p := range points {
		idx := int(p.Total / max * float64(len(sparks)-1))
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

// Compress folds a daily series into n buckets keeping each bucket's total.
func Compress(points []stats.TrendPoint, n int) []stats.TrendPoint {
	if len(points) <= n {
		return points
	}
	out := make([]stats.TrendPoint, n)
	per := len(points) / n
	for i := range out {
		start := i * per
		end := start + per
		if i == n-1 {
			end = len(points)
		}
		out[i].Day = points[start].Day
		for _, p := range points[start:end] {
			out[i].Total += p.Total
			out[i].Count += p.Count
		}
	}
	return out
}
