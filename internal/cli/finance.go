package cli

import (
	"context"
	"fmt"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
	"github.com/athletetrack/athletetrack/internal/stats"
)

type FinanceAddCmd struct {
	Category    string  `arg:"" help:"Category (Equipment, Nutrition, Training, ...)."`
	Amount      float64 `arg:"" help:"Amount (always positive)."`
	Description string  `arg:"" help:"What the transaction was for."`
	Income      bool    `help:"Record as income rather than an expense."`
	Date        string  `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *FinanceAddCmd) Run(ctx *Context) error {
	s := schema.Finance()
	if errs := s.Validate(map[string]string{
		"category":    c.Category,
		"amount":      fmt.Sprintf("%g", c.Amount),
		"description": c.Description,
		"date":        orToday(c.Date),
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

	created, err := ctx.API.CreateFinance(context.Background(), models.Finance{
		UserID:      user.ID,
		Category:    c.Category,
		Amount:      c.Amount,
		IsIncome:    c.Income,
		Date:        date,
		Description: c.Description,
	})
	if err != nil {
		return err
	}

	direction := "expense"
	if created.IsIncome {
		direction = "income"
	}
	fmt.Printf("Recorded %s: %.2f (%s) on %s (id %d)\n",
		direction, created.Amount, created.Category, formatDay(created.Date), created.ID)
	return nil
}

type FinanceListCmd struct {
	Range    string `short:"r" default:"30d" help:"Time range (7d|30d|90d|365d|this-month)."`
	Category string `short:"c" help:"Filter by category."`
	All      bool   `help:"Show every matching record, not just the newest 10."`
}

func (c *FinanceListCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}

	records, err := ctx.API.Finances(context.Background(), user.ID)
	if err != nil {
		return err
	}

	filtered := stats.FilterRange(records, stats.FinanceDate, stats.Range(c.Range), nowFn())
	if c.Category != "" {
		filtered = stats.Filter(filtered, func(f models.Finance) bool {
			return f.Category == c.Category
		})
	}
	filtered = stats.SortByDateDesc(filtered, stats.FinanceDate)

	if len(filtered) == 0 {
		fmt.Println("No transactions in this range")
		return nil
	}

	// Totals cover the whole range; truncation only shortens the listing.
	summary := stats.SummarizeFinances(filtered)
	shown := filtered
	if !c.All {
		shown = stats.Truncate(filtered, constants.TableRowLimit)
	}

	fmt.Printf("Finances (%s): income %.2f, expenses %.2f, balance %+.2f\n",
		stats.Range(c.Range).Label(), summary.Income, summary.Expenses, summary.Balance)
	for _, f := range shown {
		fmt.Printf("  %s  %-12s %+10.2f  %s\n", formatDay(f.Date), f.Category, f.Signed(), f.Description)
	}
	return nil
}
