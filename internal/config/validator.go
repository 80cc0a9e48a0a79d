package config

import (
	"fmt"
	"strings"

	"github.com/runegrid/runegrid/internal/logging"
)

// ValidationError represents a single configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects all validation failures for one Load
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

var validThemes = map[string]bool{
	"default": true,
	"mono":    true,
}

func validLevel(level string) bool {
	for _, l := range logging.ValidLevels() {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// Validate checks the configuration for invalid values. It returns every
// problem found, not just the first one.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !validThemes[c.TUI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must be one of: default, mono",
		})
	}
	if c.TUI.GridColumns < 1 {
		errs = append(errs, ValidationError{
			Field:   "tui.grid_columns",
			Value:   c.TUI.GridColumns,
			Message: "must be at least 1",
		})
	}
	if c.TUI.CanvasSize < 4 {
		errs = append(errs, ValidationError{
			Field:   "tui.canvas_size",
			Value:   c.TUI.CanvasSize,
			Message: "must be at least 4",
		})
	}

	if c.Grid.BatchSize < 1 {
		errs = append(errs, ValidationError{
			Field:   "grid.batch_size",
			Value:   c.Grid.BatchSize,
			Message: "must be at least 1",
		})
	}
	if c.Grid.BottomMargin < 0 {
		errs = append(errs, ValidationError{
			Field:   "grid.bottom_margin",
			Value:   c.Grid.BottomMargin,
			Message: "must not be negative",
		})
	}
	if c.Grid.FilterChangeRatio <= 0 || c.Grid.FilterChangeRatio > 1 {
		errs = append(errs, ValidationError{
			Field:   "grid.filter_change_ratio",
			Value:   c.Grid.FilterChangeRatio,
			Message: "must be in (0, 1]",
		})
	}
	if c.Grid.ScrollOffsetThreshold < 0 {
		errs = append(errs, ValidationError{
			Field:   "grid.scroll_offset_threshold",
			Value:   c.Grid.ScrollOffsetThreshold,
			Message: "must not be negative",
		})
	}

	if c.Recognition.TimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "recognition.timeout_ms",
			Value:   c.Recognition.TimeoutMs,
			Message: "must not be negative",
		})
	}

	if c.Meta.TimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "meta.timeout_ms",
			Value:   c.Meta.TimeoutMs,
			Message: "must not be negative",
		})
	}
	if c.Meta.ArticleURL != "" && !strings.Contains(c.Meta.ArticleURL, "%s") {
		errs = append(errs, ValidationError{
			Field:   "meta.article_url",
			Value:   c.Meta.ArticleURL,
			Message: "must contain a %s placeholder for the article title",
		})
	}

	if !validLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of: " + strings.Join(logging.ValidLevels(), ", "),
		})
	}

	return errs
}
