// Package render turns coach service responses into markdown and styles it
// for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/athletetrack/athletetrack/internal/models"
)

// Markdown styles markdown for the terminal. On renderer failure the raw
// markdown comes back instead; it is still readable.
func Markdown(md string, width int) string {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// AdviceMarkdown formats a coach answer.
func AdviceMarkdown(a models.Advice) string {
	var b strings.Builder
	b.WriteString("# Coach's Advice\n\n")
	b.WriteString(a.Advice + "\n")
	if len(a.SuggestedActions) > 0 {
		b.WriteString("\n## Suggested Actions\n\n")
		for _, action := range a.SuggestedActions {
			b.WriteString("- " + action + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("\n*Confidence: %.0f%%*\n", a.Confidence*100))
	return b.String()
}

// weekdayOrder sorts schedule keys Monday-first; unknown keys go last,
// alphabetically.
var weekdayOrder = map[string]int{
	"Mon": 0, "Monday": 0,
	"Tue": 1, "Tuesday": 1,
	"Wed": 2, "Wednesday": 2,
	"Thu": 3, "Thursday": 3,
	"Fri": 4, "Friday": 4,
	"Sat": 5, "Saturday": 5,
	"Sun": 6, "Sunday": 6,
}

// SortedDays returns the plan's schedule keys in weekday order.
func SortedDays(schedule map[string]models.ScheduleDay) []string {
	days := make([]string, 0, len(schedule))
	for day := range schedule {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		oi, iok := weekdayOrder[days[i]]
		oj, jok := weekdayOrder[days[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return days[i] < days[j]
	})
	return days
}

// PlanMarkdown formats a generated training plan: one section per day with an
// intensity badge, then the guidelines.
func PlanMarkdown(p models.TrainingPlan) string {
	var b strings.Builder
	b.WriteString("# Training Plan\n\n")
	b.WriteString(p.Plan + "\n")
	for _, day := range SortedDays(p.Schedule) {
		d := p.Schedule[day]
		b.WriteString(fmt.Sprintf("\n## %s: %s (%s Intensity)\n\n", day, d.Focus, d.Intensity))
		b.WriteString(fmt.Sprintf("Duration: %s\n\n", d.Duration))
		for _, ex := range d.Exercises {
			b.WriteString("- " + ex + "\n")
		}
	}
	if len(p.Guidelines) > 0 {
		b.WriteString("\n## Guidelines\n\n")
		for _, g := range p.Guidelines {
			b.WriteString("- " + g + "\n")
		}
	}
	return b.String()
}
