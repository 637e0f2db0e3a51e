package render

import (
	"strings"
	"testing"

	"github.com/athletetrack/athletetrack/internal/models"
)

func TestPlanMarkdown(t *testing.T) {
	plan := models.TrainingPlan{
		Plan: "A focused strength week.",
		Schedule: map[string]models.ScheduleDay{
			"Mon": {Focus: "Lower body", Exercises: []string{"Back squat", "Lunges"}, Duration: "60m", Intensity: "High"},
			"Wed": {Focus: "Recovery", Exercises: []string{"Mobility work"}, Duration: "30m", Intensity: "Low"},
		},
		Guidelines: []string{"Hydrate before sessions"},
	}

	md := PlanMarkdown(plan)

	for _, want := range []string{
		"## Mon: Lower body (High Intensity)",
		"## Wed: Recovery (Low Intensity)",
		"Duration: 60m",
		"- Back squat",
		"- Mobility work",
		"- Hydrate before sessions",
		"A focused strength week.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("plan markdown missing %q:\n%s", want, md)
		}
	}

	// Days render Monday-first regardless of map order.
	if strings.Index(md, "## Mon") > strings.Index(md, "## Wed") {
		t.Error("Monday should render before Wednesday")
	}
}

func TestSortedDays(t *testing.T) {
	schedule := map[string]models.ScheduleDay{
		"Sun": {}, "Wed": {}, "Mon": {}, "Fri": {}, "Rest": {},
	}
	got := SortedDays(schedule)
	want := []string{"Mon", "Wed", "Fri", "Sun", "Rest"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAdviceMarkdown(t *testing.T) {
	advice := models.Advice{
		Advice:           "Prioritize sleep this week.",
		SuggestedActions: []string{"Set a fixed bedtime", "Skip the evening session"},
		Confidence:       0.85,
	}

	md := AdviceMarkdown(advice)

	for _, want := range []string{
		"Prioritize sleep this week.",
		"## Suggested Actions",
		"- Set a fixed bedtime",
		"*Confidence: 85%*",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("advice markdown missing %q:\n%s", want, md)
		}
	}
}

func TestAdviceMarkdownNoActions(t *testing.T) {
	md := AdviceMarkdown(models.Advice{Advice: "Rest.", Confidence: 0.5})
	if strings.Contains(md, "Suggested Actions") {
		t.Error("actions section should be omitted when empty")
	}
}

func TestMarkdownNeverEmpty(t *testing.T) {
	out := Markdown("# Hello\n\nworld\n", 0)
	if strings.TrimSpace(out) == "" {
		t.Error("render produced empty output")
	}
}
