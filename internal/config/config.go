package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete Runegrid configuration
type Config struct {
	TUI         TUIConfig         `mapstructure:"tui"`
	Grid        GridConfig        `mapstructure:"grid"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Meta        MetaConfig        `mapstructure:"meta"`
	Export      ExportConfig      `mapstructure:"export"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "mono"
	Theme string `mapstructure:"theme"`
	// GridColumns is the number of glyph cells per row (default: 16)
	GridColumns int `mapstructure:"grid_columns"`
	// CanvasSize is the edge length of the draw-mode cell canvas (default: 16)
	CanvasSize int `mapstructure:"canvas_size"`
}

// GridConfig holds the incremental renderer thresholds. These are tuning
// knobs for the reset-vs-filter-change heuristic, not precision contracts.
type GridConfig struct {
	// BatchSize is the number of records rendered per growth step (default: 200)
	BatchSize int `mapstructure:"batch_size"`
	// BottomMargin is how close to the bottom, in scroll units, a scroll
	// event must come to trigger growth (default: 300)
	BottomMargin int `mapstructure:"bottom_margin"`
	// FilterChangeRatio bounds the length change a filter change may cause,
	// as a fraction of the previous length (default: 0.8)
	FilterChangeRatio float64 `mapstructure:"filter_change_ratio"`
	// ScrollOffsetThreshold is the minimum recorded offset for a list
	// replacement to preserve scroll position (default: 100)
	ScrollOffsetThreshold int `mapstructure:"scroll_offset_threshold"`
}

// RecognitionConfig controls the glyph recognition service client
type RecognitionConfig struct {
	// URL is the recognition service endpoint. Empty disables drawn-glyph
	// search and the recognition fallback of the similar-character view.
	URL string `mapstructure:"url"`
	// TimeoutMs is the per-request timeout in milliseconds (default: 5000)
	TimeoutMs int `mapstructure:"timeout_ms"`
}

// MetaConfig controls the best-effort metadata lookups
type MetaConfig struct {
	// ArticleURL is the reference article URL pattern; %s receives the
	// generated article title
	ArticleURL string `mapstructure:"article_url"`
	// RepoAPIURL is the repository API endpoint for the star counter
	RepoAPIURL string `mapstructure:"repo_api_url"`
	// TimeoutMs is the per-request timeout in milliseconds (default: 3000)
	TimeoutMs int `mapstructure:"timeout_ms"`
}

// ExportConfig controls glyph image export
type ExportConfig struct {
	// Dir is the output directory (default: "." — the working directory)
	Dir string `mapstructure:"dir"`
	// Font names the typeface recorded in outputs; raster filenames carry
	// its slug. Empty uses the renderer default.
	Font string `mapstructure:"font"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path (default: config dir + "/debug.log").
	// The TUI owns the terminal, so logs go to a file, not stderr.
	File string `mapstructure:"file"`
}

// Default returns the configuration with all default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:       "default",
			GridColumns: 16,
			CanvasSize:  16,
		},
		Grid: GridConfig{
			BatchSize:             200,
			BottomMargin:          300,
			FilterChangeRatio:     0.8,
			ScrollOffsetThreshold: 100,
		},
		Recognition: RecognitionConfig{
			URL:       "",
			TimeoutMs: 5000,
		},
		Meta: MetaConfig{
			ArticleURL: "https://en.wikipedia.org/wiki/%s",
			RepoAPIURL: "https://api.github.com/repos/runegrid/runegrid",
			TimeoutMs:  3000,
		},
		Export: ExportConfig{
			Dir:  ".",
			Font: "",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    filepath.Join(ConfigDir(), "debug.log"),
		},
	}
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.grid_columns", defaults.TUI.GridColumns)
	viper.SetDefault("tui.canvas_size", defaults.TUI.CanvasSize)

	// Grid defaults
	viper.SetDefault("grid.batch_size", defaults.Grid.BatchSize)
	viper.SetDefault("grid.bottom_margin", defaults.Grid.BottomMargin)
	viper.SetDefault("grid.filter_change_ratio", defaults.Grid.FilterChangeRatio)
	viper.SetDefault("grid.scroll_offset_threshold", defaults.Grid.ScrollOffsetThreshold)

	// Recognition defaults
	viper.SetDefault("recognition.url", defaults.Recognition.URL)
	viper.SetDefault("recognition.timeout_ms", defaults.Recognition.TimeoutMs)

	// Meta defaults
	viper.SetDefault("meta.article_url", defaults.Meta.ArticleURL)
	viper.SetDefault("meta.repo_api_url", defaults.Meta.RepoAPIURL)
	viper.SetDefault("meta.timeout_ms", defaults.Meta.TimeoutMs)

	// Export defaults
	viper.SetDefault("export.dir", defaults.Export.Dir)
	viper.SetDefault("export.font", defaults.Export.Font)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load unmarshals and validates the current viper configuration
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runegrid")
	}
	// Fall back to ~/.config/runegrid
	home, err := os.UserHomeDir()
	if err != nil {
		return ".runegrid"
	}
	return filepath.Join(home, ".config", "runegrid")
}
