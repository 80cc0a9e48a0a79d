package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runegrid/runegrid/internal/config"
	"github.com/runegrid/runegrid/internal/logging"
)

// Run starts the explorer and blocks until the user quits.
func Run(cfg *config.Config, log *logging.Logger) error {
	p := tea.NewProgram(NewModel(cfg, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
