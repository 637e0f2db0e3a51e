package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/schema"
)

type LoginCmd struct {
	Username string `arg:"" help:"Account username."`
	Password string `short:"p" help:"Password. Prompted when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	password := c.Password
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}

	login := schema.Login()
	if errs := login.Validate(map[string]string{
		"username": c.Username,
		"password": password,
	}); errs != nil {
		return firstError(login, errs)
	}

	user, err := ctx.API.Login(context.Background(), models.Credentials{
		Username: c.Username,
		Password: password,
	})
	if errors.Is(err, api.ErrInvalidCredentials) {
		return fmt.Errorf("invalid credentials")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Name)
	return nil
}

type RegisterCmd struct {
	Username string `arg:"" help:"Desired username."`
	Name     string `required:"" help:"Display name."`
	Password string `short:"p" help:"Password. Prompted when omitted."`
	Role     string `default:"athlete" help:"Account role."`
	Weight   string `help:"Body weight in kg."`
	Calories string `name:"calorie-goal" help:"Daily calorie goal."`
	Height   string `help:"Height in cm."`
	Age      string `help:"Age in years."`
	Gender   string `help:"Gender."`
	Activity string `name:"activity-level" help:"Activity level."`
	Agree    bool   `name:"agree-terms" help:"Agree to the terms of service."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	password := c.Password
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	}

	reg := schema.Register()
	if errs := reg.Validate(map[string]string{
		"username":         c.Username,
		"password":         password,
		"name":             c.Name,
		"role":             c.Role,
		"weight":           c.Weight,
		"dailyCalorieGoal": c.Calories,
		"heightCm":         c.Height,
		"age":              c.Age,
		"gender":           c.Gender,
		"activityLevel":    c.Activity,
	}); errs != nil {
		return firstError(reg, errs)
	}
	terms, _ := reg.Field("agreeTerms")
	if err := terms.ValidateBool(c.Agree); err != nil {
		return err
	}

	weight, err := schema.CoerceNumber(c.Weight)
	if err != nil {
		return fmt.Errorf("invalid weight: %w", err)
	}

	user, err := ctx.API.Register(context.Background(), models.Registration{
		Username:         c.Username,
		Password:         password,
		Name:             c.Name,
		Role:             c.Role,
		Weight:           weight,
		DailyCalorieGoal: schema.CoerceInt(c.Calories, 0),
		HeightCm:         schema.CoerceInt(c.Height, 0),
		Age:              schema.CoerceInt(c.Age, 0),
		Gender:           c.Gender,
		ActivityLevel:    c.Activity,
	})
	if errors.Is(err, api.ErrConflict) {
		return fmt.Errorf("username %q is already taken", c.Username)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Registered and logged in as %s\n", user.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.API.Logout(context.Background()); err != nil {
		// The local cookie is gone either way.
		fmt.Fprintf(os.Stderr, "Warning: server logout failed: %v\n", err)
	}
	fmt.Println("Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s (id %d)\n", user.Username, user.ID)
	if user.Name != "" {
		fmt.Printf("  Name: %s\n", user.Name)
	}
	if user.Role != "" {
		fmt.Printf("  Role: %s\n", user.Role)
	}
	return nil
}

// firstError flattens a per-field validation map into one CLI error, listing
// fields in their declared order.
func firstError(s schema.Schema, errs map[string]error) error {
	var parts []string
	for _, f := range s {
		if err, ok := errs[f.Name]; ok {
			parts = append(parts, err.Error())
		}
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
