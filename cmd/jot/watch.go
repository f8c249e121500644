package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/pkg/core"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the notes again whenever the store file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := openStore(jot.WithWatchDebounce(watchDebounce))
		if err != nil {
			return err
		}

		events, err := svc.Watch(ctx)
		if err != nil {
			return err
		}

		if err := printNotes(ctx, cmd, svc); err != nil {
			return err
		}

		for event := range events {
			settings.logger.Debug("store changed", "event", event.String())
			fmt.Fprintf(cmd.OutOrStdout(), "\n-- %s %s --\n", event.Type, time.Unix(event.Timestamp, 0).Format(core.TimestampLayout))
			if err := printNotes(ctx, cmd, svc); err != nil {
				// A half-written file is retried on the next event.
				settings.logger.Warn("reloading notes failed", "error", err)
			}
		}
		return nil
	},
}

func printNotes(ctx context.Context, cmd *cobra.Command, svc *jot.Service) error {
	notes, err := svc.List(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(notes) == 0 && !settings.cfg.Styled {
		fmt.Fprintln(out, "No notes found.")
		return nil
	}
	return renderer().Render(out, notes)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 50*time.Millisecond, "Quiet period before reloading")
}
