package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure taxonomy surfaced to views. Callers match
// with errors.Is; the concrete *Error carries the server's message.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("username already exists")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// Error is a non-2xx response from the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Is maps HTTP statuses onto the sentinel taxonomy so call sites can use
// errors.Is without inspecting status codes.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}
