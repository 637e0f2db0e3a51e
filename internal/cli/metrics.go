package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type MetricsAddCmd struct {
	Type  string  `arg:"" help:"Metric type (Strength|Endurance|Speed|Flexibility|Power)."`
	Value float64 `arg:"" help:"Measured value."`
	Unit  string  `short:"u" required:"" help:"Unit of measure."`
	Date  string  `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Notes string  `short:"n" help:"Free-form notes."`
}

func (c *MetricsAddCmd) Run(ctx *Context) error {
	metricType := models.MetricType(c.Type)
	s := schema.Metric()
	if errs := s.Validate(map[string]string{
		"metricType": c.Type,
		"value":      fmt.Sprintf("%g", c.Value),
		"unit":       c.Unit,
		"date":       orToday(c.Date),
		"notes":      c.Notes,
	}); errs != nil {
		return firstError(s, errs)
	}
	if !models.ValidUnit(metricType, c.Unit) {
		return fmt.Errorf("unit %q is not valid for %s (use one of: %s)",
			c.Unit, c.Type, strings.Join(models.UnitsFor(metricType), ", "))
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	created, err := ctx.API.CreateMetric(context.Background(), models.PerformanceMetric{
		UserID:     user.ID,
		MetricType: metricType,
		Value:      c.Value,
		Unit:       c.Unit,
		Date:       date,
		Notes:      c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s: %g %s on %s (id %d)\n",
		created.MetricType, created.Value, created.Unit, formatDay(created.Date), created.ID)
	return nil
}

type MetricsListCmd struct {
	Range string `short:"r" default:"30d" help:"Time range (7d|30d|90d|365d|this-month)."`
	Type  string `short:"t" help:"Filter by metric type."`
	All   bool   `help:"Show every matching record, not just the newest 10."`
}

func (c *MetricsListCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	records, err := ctx.API.Metrics(context.Background(), user.ID)
	if err != nil {
		return err
	}

	filtered := stats.FilterRange(records, stats.MetricDate, stats.Range(c.Range), nowFn())
	if c.Type != "" {
		filtered = stats.Filter(filtered, func(m models.PerformanceMetric) bool {
			return string(m.MetricType) == c.Type
		})
	}
	filtered = stats.SortByDateDesc(filtered, stats.MetricDate)

	if len(filtered) == 0 {
		fmt.Println("No metrics recorded in this range")
		return nil
	}

	summary := stats.SummarizeMetrics(filtered)
	shown := filtered
	if !c.All {
		shown = stats.Truncate(filtered, constants.TableRowLimit)
	}

	fmt.Printf("Metrics (%s): %d records, average %.1f\n", stats.Range(c.Range).Label(), summary.Count, summary.Average)
	for _, m := range shown {
		line := fmt.Sprintf("  %s  %-12s %8g %-8s", formatDay(m.Date), m.MetricType, m.Value, m.Unit)
		if m.Notes != "" {
			line += "  " + m.Notes
		}
		fmt.Println(line)
	}
	return nil
}
