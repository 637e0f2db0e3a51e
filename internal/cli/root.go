package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/utils"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	API       *api.Client
	ConfigDir string
	Server    string
	Debug     bool
}

// RequireUser resolves the session cookie to a user, with a friendly message
// when there is none.
func (c *Context) RequireUser(ctx context.Context) (models.User, error) {
	user, err := c.API.CurrentUser(ctx)
	if errors.Is(err, api.ErrUnauthenticated) {
		return models.User{}, fmt.Errorf("not logged in; run 'athletetrack login' first")
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// nowFn is swapped in tests.
var nowFn = time.Now

// parseDateFlag resolves an optional --date flag, defaulting to today.
func parseDateFlag(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nowFn(), nil
	}
	return utils.ParseDate(s)
}

// orToday substitutes today's date for an empty flag value before validation.
func orToday(s string) string {
	if strings.TrimSpace(s) == "" {
		return utils.FormatDate(nowFn())
	}
	return s
}

func formatDay(t time.Time) string {
	return utils.FormatDate(t)
}

// splitLines turns a multi-value flag joined with ';' or newlines into a
// clean string slice.
func splitLines(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
