// Package records holds the four record-page models: performance, nutrition,
// injuries and finances. Each page shows a filtered table over cached records
// plus a modal add form; create requests are emitted as messages and the root
// model runs the mutation.
package records

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/render"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
)

// nextRange cycles the time-range toggle.
func nextRange(r stats.Range) stats.Range {
	for i, candidate := range stats.Ranges {
		if candidate == r {
			return stats.Ranges[(i+1)%len(stats.Ranges)]
		}
	}
	return stats.RangeMonth
}

// nextFilter cycles through "" (all) plus the given options.
func nextFilter(current string, options []string) string {
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(constants.TableRowLimit+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(1, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

func filterLabel(name, value string) string {
	if value == "" {
		return name + ": all"
	}
	return name + ": " + value
}

// rangeDays converts the active range to a day count for the trend series.
func rangeDays(r stats.Range, now time.Time) int {
	start, end := r.Window(now)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// trendLine draws the daily series for the active range, folding long ranges
// so the line fits one terminal row.
func trendLine(points []stats.TrendPoint) string {
	if len(points) > 60 {
		points = render.Compress(points, 52)
	}
	return "Trend " + render.Sparkline(points)
}

// breakdownLine joins distribution buckets into one summary row.
func breakdownLine(label string, buckets []stats.Bucket, formatBucket func(stats.Bucket) string) string {
	parts := make([]string, len(buckets))
	for i, b := range buckets {
		parts[i] = formatBucket(b)
	}
	return label + ": " + strings.Join(parts, " | ")
}
