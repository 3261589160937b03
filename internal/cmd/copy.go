package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/pulse/internal/progress"
)

var copySize string

// NewCopyCommand creates the 'pulse copy' subcommand
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Stream stdin to stdout with a byte-count progress bar",
		Long: `Copy streams standard input to standard output while rendering a
progress bar on standard error, advancing by bytes transferred. The expected
byte total must be supplied with --size so the bar has a fixed 100% point.

Examples:
  pulse copy --size 1048576 < file.bin > out.bin
  pulse copy --size 250MB < dump.sql | gzip > dump.sql.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseByteSize(copySize)
			if err != nil {
				return err
			}
			if total <= 0 {
				return fmt.Errorf("invalid size %q: must be greater than zero", copySize)
			}

			// The bar renders to stderr so the copied bytes on stdout
			// stay clean for piping.
			barSink := cmd.ErrOrStderr()
			s, err := loadSettings(cmd, barSink)
			if err != nil {
				return err
			}

			bar, err := progress.New(int(total), s.theme.Options(s.cfg.Width, barSink))
			if err != nil {
				return fmt.Errorf("create progress bar: %w", err)
			}

			src := progress.NewReader(cmd.InOrStdin(), bar)
			copied, err := io.Copy(cmd.OutOrStdout(), src)
			if err != nil {
				return fmt.Errorf("copy failed after %d bytes: %w", copied, err)
			}
			if err := bar.Finish(); err != nil {
				return fmt.Errorf("finish progress: %w", err)
			}

			s.log.Infof("copied %d bytes", copied)
			return nil
		},
	}

	cmd.Flags().StringVar(&copySize, "size", "", "Expected byte total, plain or with a KB/MB/GB/TB suffix")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}
