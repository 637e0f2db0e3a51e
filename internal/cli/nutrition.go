package cli

import (
	"context"
	"fmt"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type NutritionAddCmd struct {
	Meal     string `arg:"" help:"Meal type (Breakfast, Lunch, Dinner, ...)."`
	Food     string `arg:"" help:"What was eaten."`
	Calories string `short:"c" help:"Calories. Leave empty to omit."`
	Protein  string `short:"p" help:"Protein in grams. Leave empty to omit."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *NutritionAddCmd) Run(ctx *Context) error {
	s := schema.Nutrition()
	if errs := s.Validate(map[string]string{
		"mealType":  c.Meal,
		"foodItems": c.Food,
		"calories":  c.Calories,
		"protein":   c.Protein,
		"date":      orToday(c.Date),
	}); errs != nil {
		return firstError(s, errs)
	}

	calories, err := schema.CoerceNullableInt(c.Calories)
	if err != nil {
		return fmt.Errorf("invalid calories: %w", err)
	}
	protein, err := schema.CoerceNullableInt(c.Protein)
	if err != nil {
		return fmt.Errorf("invalid protein: %w", err)
	}
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	created, err := ctx.API.CreateNutritionLog(context.Background(), models.NutritionLog{
		UserID:    user.ID,
		MealType:  c.Meal,
		FoodItems: c.Food,
		Calories:  calories,
		Protein:   protein,
		Date:      date,
		Notes:     c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s on %s (id %d)\n", created.MealType, formatDay(created.Date), created.ID)
	return nil
}

type NutritionListCmd struct {
	Range string `short:"r" default:"7d" help:"Time range (7d|30d|90d|365d|this-month)."`
	Meal  string `short:"m" help:"Filter by meal type."`
	All   bool   `help:"Show every matching record, not just the newest 10."`
}

func (c *NutritionListCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	records, err := ctx.API.NutritionLogs(context.Background(), user.ID)
	if err != nil {
		return err
	}

	filtered := stats.FilterRange(records, stats.NutritionDate, stats.Range(c.Range), nowFn())
	if c.Meal != "" {
		filtered = stats.Filter(filtered, func(n models.NutritionLog) bool {
			return n.MealType == c.Meal
		})
	}
	filtered = stats.SortByDateDesc(filtered, stats.NutritionDate)

	if len(filtered) == 0 {
		fmt.Println("No meals logged in this range")
		return nil
	}

	summary := stats.SummarizeNutrition(filtered)
	shown := filtered
	if !c.All {
		shown = stats.Truncate(filtered, constants.TableRowLimit)
	}

	fmt.Printf("Nutrition (%s): %d meals, %d kcal, %dg protein\n",
		stats.Range(c.Range).Label(), summary.Meals, summary.TotalCalories, summary.TotalProtein)
	for _, n := range shown {
		fmt.Printf("  %s  %-16s %5d kcal %4dg  %s\n",
			formatDay(n.Date), n.MealType, n.CaloriesOrZero(), n.ProteinOrZero(), n.FoodItems)
	}
	return nil
}

type NutritionAnalyzeCmd struct {
	Food string `arg:"" help:"Free-text food list to estimate."`
}

func (c *NutritionAnalyzeCmd) Run(ctx *Context) error {
	if _, err := ctx.RequireUser(context.Background()); err != nil {
		return err
	}

	analysis, err := ctx.API.AnalyzeNutrition(context.Background(), c.Food)
	if err != nil {
		return err
	}

	fmt.Printf("Estimated: %d kcal, %dg protein\n", analysis.Calories, analysis.Protein)
	return nil
}
