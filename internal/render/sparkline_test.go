package render

import (
	"testing"

	"github.com/athletetrack/athletetrack/internal/stats"
)

func TestSparklineScalesToMax(t *testing.T) {
	points := []stats.TrendPoint{{Total: 0}, {Total: 5}, {Total: 10}}
	if got := Sparkline(points); got != "▁▄█" {
		t.Errorf("Sparkline = %q", got)
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	if got := Sparkline(make([]stats.TrendPoint, 3)); got != "▁▁▁" {
		t.Errorf("all-zero series = %q", got)
	}
}

func TestCompressKeepsTotals(t *testing.T) {
	points := make([]stats.TrendPoint, 10)
	for i := range points {
		points[i].Total = 1
		points[i].Count = 1
	}
	out := Compress(points, 5)
	if len(out) != 5 {
		t.Fatalf("len = %d", len(out))
	}
	for i, p := range out {
		if p.Total != 2 || p.Count != 2 {
			t.Errorf("bucket %d = %+v, want totals of 2", i, p)
		}
	}
}
