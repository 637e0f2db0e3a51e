package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/cli"
	"github.com/athletetrack/athletetrack/internal/constants"
	apperrors "github.com/athletetrack/athletetrack/internal/errors"
	"github.com/athletetrack/athletetrack/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Backend server URL." env:"ATHLETETRACK_SERVER" default:"${server}"`
	Config  string `help:"Config directory path." type:"path" default:"${config}"`
	Debug   bool   `help:"Enable debug logging."`

	Login    cli.LoginCmd    `cmd:"" help:"Log in and store the session cookie."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account."`
	Logout   cli.LogoutCmd   `cmd:"" help:"End the session."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the logged-in user."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Metrics  struct {
		Add  cli.MetricsAddCmd  `cmd:"" help:"Record a performance metric."`
		List cli.MetricsListCmd `cmd:"" help:"List recorded metrics."`
	} `cmd:"" help:"Track performance metrics."`
	Nutrition struct {
		Add     cli.NutritionAddCmd     `cmd:"" help:"Log a meal."`
		List    cli.NutritionListCmd    `cmd:"" help:"List logged meals."`
		Analyze cli.NutritionAnalyzeCmd `cmd:"" help:"Estimate calories and protein for a food list."`
	} `cmd:"" help:"Track nutrition."`
	Injury struct {
		Add  cli.InjuryAddCmd  `cmd:"" help:"Record an injury."`
		List cli.InjuryListCmd `cmd:"" help:"List recorded injuries."`
	} `cmd:"" help:"Track injuries."`
	Finance struct {
		Add  cli.FinanceAddCmd  `cmd:"" help:"Record a transaction."`
		List cli.FinanceListCmd `cmd:"" help:"List transactions."`
	} `cmd:"" help:"Track finances."`
	Coach struct {
		Advice cli.CoachAdviceCmd `cmd:"" help:"Ask the AI coach a question."`
		Plan   cli.CoachPlanCmd   `cmd:"" help:"Generate a weekly training plan."`
	} `cmd:"" help:"AI coaching."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run environment diagnostics."`
}

func main() {
	// .env overrides are optional; absence is not an error.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Athlete self-tracking: performance, nutrition, injuries and finances from the terminal"),
		kong.UsageOnError(),
		kong.Vars{
			"version": constants.Version,
			"server":  constants.DefaultServerURL,
			"config":  constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: CLI.Config}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	client, err := api.New(CLI.Server, filepath.Join(CLI.Config, constants.CookieFileName))
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		API:       client,
		ConfigDir: CLI.Config,
		Server:    CLI.Server,
		Debug:     CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
