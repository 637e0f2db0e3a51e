package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/constants"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastError
)

// toast is the transient status line. A sequence number keeps an old expiry
// tick from clearing a newer message.
type toast struct {
	text string
	kind toastKind
	seq  int
}

type toastExpiredMsg struct {
	seq int
}

func (t *toast) show(kind toastKind, text string) tea.Cmd {
	t.text = text
	t.kind = kind
	t.seq++
	seq := t.seq
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.text = ""
	}
}

func (t toast) view() string {
	if t.text == "" {
		return ""
	}
	if t.kind == toastError {
		return toastErrorStyle.Render("✗ " + t.text)
	}
	return toastInfoStyle.Render("✓ " + t.text)
}
