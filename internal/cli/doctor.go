package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkConfigDir(ctx); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK\n")
	}

	if err := checkServerReachable(ctx); err != nil {
		fmt.Printf("❌ Server reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Server reachable: OK\n")
	}

	if err := checkSession(ctx); err != nil {
		fmt.Printf("⚠ Session: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Session: OK\n")
	}

	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfigDir(ctx *Context) error {
	if err := os.MkdirAll(ctx.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", ctx.ConfigDir, err)
	}
	probe := filepath.Join(ctx.ConfigDir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return fmt.Errorf("config directory %s is not writable: %w", ctx.ConfigDir, err)
	}
	return os.Remove(probe)
}

func checkServerReachable(ctx *Context) error {
	checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := ctx.API.CurrentUser(checkCtx)
	// 401 means the server answered; only transport errors fail the check.
	if err != nil && !errors.Is(err, api.ErrUnauthenticated) {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return nil
		}
		return fmt.Errorf("cannot reach %s: %w", ctx.Server, err)
	}
	return nil
}

func checkSession(ctx *Context) error {
	_, err := ctx.API.CurrentUser(context.Background())
	if errors.Is(err, api.ErrUnauthenticated) {
		return fmt.Errorf("not logged in - run 'athletetrack login' to start a session")
	}
	return err
}

func checkSingleInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other %s instance(s) running - concurrent sessions may fight over the cookie file", count, constants.AppName)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
