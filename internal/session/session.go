package session

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/logger"
	"github.com/athletetrack/athletetrack/internal/models"
)

// Phase is the session's authentication state. Loading is distinct from
// Anonymous so protected views can defer their redirect until the cookie
// rehydration has actually answered.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

// Session holds the current user. It is a process-wide singleton owned by the
// update loop; only its own methods mutate it.
type Session struct {
	phase Phase
	user  models.User
}

// New returns a session in the Loading phase, pending rehydration.
func New() *Session {
	return &Session{phase: PhaseLoading}
}

func (s *Session) Phase() Phase { return s.phase }

// User returns the authenticated user. Only meaningful in PhaseAuthenticated.
func (s *Session) User() models.User { return s.user }

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool { return s.phase == PhaseAuthenticated }

// SetUser transitions to the authenticated phase.
func (s *Session) SetUser(u models.User) {
	s.phase = PhaseAuthenticated
	s.user = u
}

// Clear transitions to the anonymous phase. Called on logout and on any 401
// received mid-session.
func (s *Session) Clear() {
	s.phase = PhaseAnonymous
	s.user = models.User{}
}

// RehydratedMsg reports the result of the startup GET /api/user.
type RehydratedMsg struct {
	User models.User
	Err  error
}

// LoginResultMsg reports a finished login or register operation.
type LoginResultMsg struct {
	User models.User
	Err  error
}

// LoggedOutMsg reports a finished logout.
type LoggedOutMsg struct {
	Err error
}

// RehydrateCmd asks the server who the cookie belongs to.
func RehydrateCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		user, err := client.CurrentUser(context.Background())
		return RehydratedMsg{User: user, Err: err}
	}
}

// LoginCmd runs a login attempt off the update loop.
func LoginCmd(client *api.Client, creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		user, err := client.Login(context.Background(), creds)
		if err != nil && !errors.Is(err, api.ErrInvalidCredentials) {
			logger.Warn("Login failed", "error", err)
		}
		return LoginResultMsg{User: user, Err: err}
	}
}

// RegisterCmd runs a registration attempt off the update loop.
func RegisterCmd(client *api.Client, reg models.Registration) tea.Cmd {
	return func() tea.Msg {
		user, err := client.Register(context.Background(), reg)
		if err != nil && !errors.Is(err, api.ErrConflict) {
			logger.Warn("Registration failed", "error", err)
		}
		return LoginResultMsg{User: user, Err: err}
	}
}

// LogoutCmd ends the session. The caller clears local state regardless of the
// error: the local session is authoritative for UI gating.
func LogoutCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		err := client.Logout(context.Background())
		if err != nil {
			logger.Warn("Server logout failed, clearing local session anyway", "error", err)
		}
		return LoggedOutMsg{Err: err}
	}
}
