package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/pulse/internal/progress"
	"github.com/harrison/pulse/internal/theme"
)

// sample geometry for the theme listing
const (
	sampleWidth = 20
	sampleTotal = 10
	sampleDone  = 6
)

// NewThemesCommand creates the 'pulse themes' subcommand
func NewThemesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes with a sample bar for each",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			useColor := !flagNoColor && theme.Detect(out)
			label := color.New(color.FgCyan)

			fmt.Fprintln(out, "Available themes:")
			for _, name := range theme.Names() {
				th, _ := theme.Builtin(name)
				if !useColor {
					th = th.Stripped()
				}

				sample, err := renderSample(th)
				if err != nil {
					return fmt.Errorf("render %s sample: %w", name, err)
				}

				display := name
				if useColor {
					display = label.Sprint(name)
				}
				fmt.Fprintf(out, "  %-10s %s\n", display, sample)
			}
			return nil
		},
	}

	return cmd
}

// renderSample renders a frozen mid-progress snapshot of the theme.
func renderSample(th theme.Theme) (string, error) {
	var buf bytes.Buffer
	bar, err := progress.New(sampleTotal, th.Options(sampleWidth, &buf))
	if err != nil {
		return "", err
	}
	bar.Advance(sampleDone)
	if err := bar.Render(); err != nil {
		return "", err
	}
	// Drop the line-rewrite prefix; the listing prints one sample per line.
	line := strings.TrimPrefix(buf.String(), "\r")
	return strings.TrimPrefix(line, th.ClearLine), nil
}
