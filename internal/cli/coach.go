package cli

import (
	"context"
	"fmt"

	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/render"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type CoachAdviceCmd struct {
	Question  string `arg:"" help:"What to ask the coach."`
	NoContext bool   `help:"Ask without sending recent records as context."`
}

func (c *CoachAdviceCmd) Run(ctx *Context) error {
	s := schema.Advice()
	if errs := s.Validate(map[string]string{"question": c.Question}); errs != nil {
		return firstError(s, errs)
	}

	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	req := models.AdviceRequest{Question: c.Question}
	if !c.NoContext {
		metrics, err := ctx.API.Metrics(context.Background(), user.ID)
		if err != nil {
			return err
		}
		logs, err := ctx.API.NutritionLogs(context.Background(), user.ID)
		if err != nil {
			return err
		}
		injuries, err := ctx.API.Injuries(context.Background(), user.ID)
		if err != nil {
			return err
		}
		req.Context = stats.BuildAdviceContext(metrics, logs, injuries)
	}

	advice, err := ctx.API.Advice(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(render.AdviceMarkdown(advice), 100))
	return nil
}

type CoachPlanCmd struct {
	Level       string `short:"l" default:"intermediate" help:"Fitness level (beginner|intermediate|advanced|elite)."`
	Goals       string `arg:"" help:"Training goals."`
	Constraints string `short:"c" help:"Constraints, separated by ';'."`
}

func (c *CoachPlanCmd) Run(ctx *Context) error {
	s := schema.TrainingPlan()
	if errs := s.Validate(map[string]string{
		"level":       c.Level,
		"goals":       c.Goals,
		"constraints": c.Constraints,
	}); errs != nil {
		return firstError(s, errs)
	}

	if _, err := ctx.RequireUser(context.Background()); err != nil {
		return err
	}

	plan, err := ctx.API.TrainingPlan(context.Background(), models.TrainingPlanRequest{
		Level:       c.Level,
		Goals:       c.Goals,
		Constraints: splitLines(c.Constraints),
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(render.PlanMarkdown(plan), 100))
	return nil
}
