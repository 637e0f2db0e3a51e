package cli

import (
	"context"
	"fmt"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type InjuryAddCmd struct {
	Type     string `arg:"" help:"Injury type (Sprain, Strain, Fracture, ...)."`
	BodyPart string `arg:"" help:"Affected body part."`
	Severity string `short:"s" default:"Mild" help:"Severity (Mild|Moderate|Severe)."`
	Status   string `default:"Active" help:"Status (Active|Recovered)."`
	Date     string `short:"d" help:"Date occurred (YYYY-MM-DD). Defaults to today."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *InjuryAddCmd) Run(ctx *Context) error {
	s := schema.Injury()
	if errs := s.Validate(map[string]string{
		"injuryType":   c.Type,
		"bodyPart":     c.BodyPart,
		"severity":     c.Severity,
		"status":       c.Status,
		"dateOccurred": orToday(c.Date),
		"notes":        c.Notes,
	}); errs != nil {
		return firstError(s, errs)
	}

	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	created, err := ctx.API.CreateInjury(context.Background(), models.Injury{
		UserID:       user.ID,
		InjuryType:   c.Type,
		BodyPart:     c.BodyPart,
		DateOccurred: date,
		Severity:     models.Severity(c.Severity),
		Status:       models.InjuryStatus(c.Status),
		Notes:        c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s %s (%s) on %s (id %d)\n",
		created.Severity, created.InjuryType, created.BodyPart, formatDay(created.DateOccurred), created.ID)
	return nil
}

type InjuryListCmd struct {
	Range  string `short:"r" default:"365d" help:"Time range (7d|30d|90d|365d|this-month)."`
	Status string `short:"s" help:"Filter by status (Active|Recovered)."`
	All    bool   `help:"Show every matching record, not just the newest 10."`
}

func (c *InjuryListCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	records, err := ctx.API.Injuries(context.Background(), user.ID)
	if err != nil {
		return err
	}

	filtered := stats.FilterRange(records, stats.InjuryDate, stats.Range(c.Range), nowFn())
	if c.Status != "" {
		filtered = stats.Filter(filtered, func(i models.Injury) bool {
			return string(i.Status) == c.Status
		})
	}
	filtered = stats.SortByDateDesc(filtered, stats.InjuryDate)

	if len(filtered) == 0 {
		fmt.Println("No injuries recorded in this range")
		return nil
	}

	summary := stats.SummarizeInjuries(filtered)
	shown := filtered
	if !c.All {
		shown = stats.Truncate(filtered, constants.TableRowLimit)
	}

	fmt.Printf("Injuries (%s): %d active, %d recovered\n",
		stats.Range(c.Range).Label(), summary.Active, summary.Recovered)
	for _, i := range shown {
		line := fmt.Sprintf("  %s  [%-9s] %-9s %s, %s",
			formatDay(i.DateOccurred), i.Status, i.Severity, i.InjuryType, i.BodyPart)
		if i.Notes != "" {
			line += "  " + i.Notes
		}
		fmt.Println(line)
	}
	return nil
}
