package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stormlightlabs/doctrail/internal/query"
)

// Run starts the Bubble Tea program against a ready query engine.
func Run(engine *query.Engine) error {
	p := tea.NewProgram(NewRootModel(engine), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
