package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Flags shared by every subcommand. CLI values override the configuration
// file, which overrides built-in defaults.
var (
	flagConfig    string
	flagWidth     int
	flagTheme     string
	flagThemeFile string
	flagNoColor   bool
	flagLogLevel  string
)

// NewRootCommand creates and returns the root cobra command for pulse
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Terminal progress bars with spinners, colors and themes",
		Long: `Pulse renders single-line terminal progress displays: a colored
bar, a spinner, and a live percentage, rewritten in place as work completes.

Built-in themes can be overridden with a YAML theme file, and every display
setting can also come from a configuration file (.pulse.yaml by default).`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", ".pulse.yaml", "Path to the configuration file")
	cmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Bar width in glyph positions (overrides config)")
	cmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Built-in theme name (overrides config)")
	cmd.PersistentFlags().StringVar(&flagThemeFile, "theme-file", "", "YAML theme overlay applied over the base theme")
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable color output")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log verbosity: debug, info, warn, error")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand())
	cmd.AddCommand(NewCopyCommand())
	cmd.AddCommand(NewThemesCommand())

	return cmd
}
