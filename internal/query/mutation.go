package query

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// MutationMsg delivers a finished write operation back to the update loop.
// On success the loop invalidates the listed keys before any other handling,
// so active observers refetch on their next pass.
type MutationMsg struct {
	// Tag identifies which form or action issued the mutation.
	Tag         string
	Data        interface{}
	Err         error
	Invalidates []Key
}

// MutateCmd runs fn exactly once in the background and reports the outcome.
// Mutations are independent of each other: several may be in flight at once,
// and their invalidations apply in resolution order.
func MutateCmd(tag string, fn func(ctx context.Context) (interface{}, error), invalidates ...Key) tea.Cmd {
	return func() tea.Msg {
		data, err := fn(context.Background())
		msg := MutationMsg{Tag: tag, Data: data, Err: err}
		if err == nil {
			msg.Invalidates = invalidates
		}
		return msg
	}
}
