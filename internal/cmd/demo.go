package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/pulse/internal/progress"
)

var (
	demoSteps     int
	demoInterval  time.Duration
	demoIncrement int
)

// NewDemoCommand creates the 'pulse demo' subcommand
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a simulated task's progress bar",
		Long: `Demo drives a progress bar through a simulated task, advancing a
fixed increment per tick and sleeping between ticks. Useful for previewing
themes and widths.

Examples:
  pulse demo                             # 100 steps, 50ms apart
  pulse demo --steps 500 --interval 5ms  # faster, finer-grained task
  pulse demo --theme neon --increment 7  # uneven batches, truecolor theme`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, err := loadSettings(cmd, out)
			if err != nil {
				return err
			}

			steps := s.cfg.Demo.Steps
			interval := s.cfg.Demo.Interval
			increment := s.cfg.Demo.Increment
			if cmd.Flags().Changed("steps") {
				steps = demoSteps
			}
			if cmd.Flags().Changed("interval") {
				interval = demoInterval
			}
			if cmd.Flags().Changed("increment") {
				increment = demoIncrement
			}
			if increment <= 0 {
				return fmt.Errorf("invalid increment %d: must be greater than zero", increment)
			}

			bar, err := progress.New(steps, s.theme.Options(s.cfg.Width, out))
			if err != nil {
				return fmt.Errorf("create progress bar: %w", err)
			}

			s.log.Debugf("simulating %d steps, %s apart, %d per tick", steps, interval, increment)

			for !bar.Completed() {
				time.Sleep(interval)
				bar.Advance(increment)
				if err := bar.Render(); err != nil {
					return fmt.Errorf("render progress: %w", err)
				}
			}
			if err := bar.Finish(); err != nil {
				return fmt.Errorf("finish progress: %w", err)
			}

			s.log.Debugf("simulation finished after %d units", bar.Current())
			return nil
		},
	}

	cmd.Flags().IntVar(&demoSteps, "steps", 0, "Total units in the simulated task")
	cmd.Flags().DurationVar(&demoInterval, "interval", 0, "Pause between updates (e.g. 50ms)")
	cmd.Flags().IntVar(&demoIncrement, "increment", 0, "Units reported per update")

	return cmd
}
