package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/pulse/internal/config"
	"github.com/harrison/pulse/internal/logger"
	"github.com/harrison/pulse/internal/theme"
)

// settings is the resolved runtime state for a command: configuration with
// flag overrides applied, the theme to render with, and a stderr logger.
type settings struct {
	cfg   *config.Config
	theme theme.Theme
	log   *logger.ConsoleLogger
}

// loadSettings builds settings for a command invocation. The precedence is
// CLI flag > config file > default. barSink is the writer the progress bar
// will render to; colors are stripped when it is not a color-capable
// terminal or --no-color is set.
func loadSettings(cmd *cobra.Command, barSink io.Writer) (*settings, error) {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = flagWidth
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagThemeFile != "" {
		cfg.ThemeFile = flagThemeFile
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if cfg.Width <= 0 {
		return nil, fmt.Errorf("invalid width %d: must be greater than zero", cfg.Width)
	}

	base, ok := theme.Builtin(cfg.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.Names(), ", "))
	}
	if cfg.ThemeFile != "" {
		base, err = theme.Load(cfg.ThemeFile, base)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
	}
	if flagNoColor || !theme.Detect(barSink) {
		base = base.Stripped()
	}

	return &settings{
		cfg:   cfg,
		theme: base,
		log:   logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
	}, nil
}
