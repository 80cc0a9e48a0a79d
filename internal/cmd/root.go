// Package cmd wires up the runegrid command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/runegrid/runegrid/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "runegrid",
	Short: "Terminal Unicode character explorer",
	Long: `Runegrid is a terminal explorer for Unicode characters: browse by
category, search by name or code point, filter by character type,
sketch a glyph to find it, inspect look-alikes, and export glyphs
as SVG or PNG images.

Running runegrid with no subcommand opens the explorer.`,
	RunE: runExplore,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/runegrid/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/runegrid")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("RUNEGRID")
	// Replace dots with underscores for nested keys in env vars
	// e.g., RUNEGRID_GRID_BATCH_SIZE for grid.batch_size
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig unmarshals and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	return config.Load()
}
