package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/tui"
)

type TuiCmd struct {
	Open string `arg:"" optional:"" help:"Route to open (/, /performance, /nutrition, ...)."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.API, c.Open), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
