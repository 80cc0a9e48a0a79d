package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runegrid/runegrid/internal/logging"
	"github.com/runegrid/runegrid/internal/tui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Open the interactive explorer",
	Long: `Open the interactive character grid. This is also what running
runegrid with no subcommand does.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The TUI owns the terminal, so logs always go to a file
	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		fileLog, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = fileLog.Close() }()
		log = fileLog
	}

	if err := tui.Run(cfg, log); err != nil {
		return fmt.Errorf("explorer exited with error: %w", err)
	}
	return nil
}
