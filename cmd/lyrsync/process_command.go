package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"lyrsync/internal/config"
	"lyrsync/internal/logging"
	"lyrsync/internal/queue"
	"lyrsync/internal/workflow"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process every audio/lyric pair in the configured directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *queue.Store) error {
				if overwrite {
					cfg.Workflow.OverwriteExisting = true
				}

				logger, err := logging.New(logging.Options{
					Level:   cfg.Logging.Level,
					Format:  cfg.Logging.Format,
					LogFile: filepath.Join(cfg.Paths.LogDir, "lyrsync.log"),
				})
				if err != nil {
					return err
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				manager := workflow.NewManager(cfg, store, logger)
				summary, err := manager.Run(runCtx)
				if err != nil {
					if errors.Is(err, workflow.ErrLocked) {
						return fmt.Errorf("another run is already in progress: %w", err)
					}
					return err
				}

				out := cmd.OutOrStdout()
				if summary.Discovered == 0 {
					fmt.Fprintf(out, "No audio/lyric pairs found under %s\n", cfg.Paths.AudioDir)
					return nil
				}
				fmt.Fprintf(out, "Processed %d pair(s): %d succeeded, %d failed, %d skipped\n",
					summary.Discovered, summary.Succeeded, summary.Failed, summary.Skipped)
				if summary.Unpaired > 0 {
					fmt.Fprintf(out, "%d recording(s) had no lyric file; see the log for names\n", summary.Unpaired)
				}
				if summary.Failed > 0 {
					fmt.Fprintln(out, "Inspect failures with `lyrsync queue list --status failed`")
				}
				if summary.Succeeded == 0 && summary.Failed > 0 {
					return fmt.Errorf("all %d pair(s) failed", summary.Failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Regenerate LRC files that already exist")
	return cmd
}
