package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lyrsync/internal/config"
	"lyrsync/internal/deps"
	"lyrsync/internal/queue"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, dependency, and ledger health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				printSection(out, "Directories", colorize)
				fmt.Fprintln(out, directoryStatusLine("Audio", cfg.Paths.AudioDir, colorize))
				fmt.Fprintln(out, directoryStatusLine("Lyrics", cfg.Paths.LyricsDir, colorize))
				fmt.Fprintln(out, directoryStatusLine("Output", cfg.Paths.OutputDir, colorize))
				fmt.Fprintln(out, directoryStatusLine("Logs", cfg.Paths.LogDir, colorize))

				fmt.Fprintln(out)
				printSection(out, "Dependencies", colorize)
				for _, status := range deps.CheckBinaries(deps.Required(cfg.FFmpegBinary(), cfg.FFprobeBinary())) {
					fmt.Fprintln(out, dependencyStatusLine(status, colorize))
				}

				fmt.Fprintln(out)
				printSection(out, "Ledger", colorize)
				summary, err := store.Summary(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ledgerStatusLine(summary, colorize))
				return nil
			})
		},
	}
}

func printSection(out io.Writer, title string, colorize bool) {
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
}

func directoryStatusLine(label, path string, colorize bool) string {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return renderStatusLine(label, statusError, fmt.Sprintf("%s (unreadable)", path), colorize)
	case !info.IsDir():
		return renderStatusLine(label, statusError, fmt.Sprintf("%s is not a directory", path), colorize)
	default:
		return renderStatusLine(label, statusOK, path, colorize)
	}
}

func dependencyStatusLine(status deps.Status, colorize bool) string {
	if status.Available {
		return renderStatusLine(status.Name, statusOK, status.Command, colorize)
	}
	kind := statusError
	if status.Optional {
		kind = statusWarn
	}
	return renderStatusLine(status.Name, kind, status.Detail, colorize)
}

func ledgerStatusLine(summary queue.HealthSummary, colorize bool) string {
	if summary.Total == 0 {
		return renderStatusLine("Items", statusInfo, "empty", colorize)
	}
	message := fmt.Sprintf("%d total (%d pending, %d processing, %d completed, %d failed)",
		summary.Total, summary.Pending, summary.Processing, summary.Completed, summary.Failed)
	kind := statusOK
	if summary.Failed > 0 {
		kind = statusWarn
	}
	if summary.Processing > 0 {
		kind = statusInfo
	}
	return renderStatusLine("Items", kind, message, colorize)
}
