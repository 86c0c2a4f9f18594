package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/afiaWhiteprints/esosa/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the same research session on an interval",
	Long: `Run research for the given keywords now and then again on every
interval until interrupted. Sessions are stored like any other; add
--publish to emit an event per completed session.

Example:
  esosa watch --keywords "ai agents" --niche "applied AI" --interval 6h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		if len(keywords) == 0 {
			return errors.New("at least one --keywords value is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = a.cfg.Research.WatchInterval
		}

		req := researchRequestFromFlags(cmd, keywords, a)
		sched := scheduler.NewScheduler(a.research, req, interval, a.logger)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			a.logger.Info("received shutdown signal", "signal", sig)
			cancel()
		}()

		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	addResearchFlags(watchCmd)
	watchCmd.Flags().Duration("interval", time.Duration(0), "time between sessions (default from config)")
}
