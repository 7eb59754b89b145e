package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavk23/LQG-Analysis/internal/api"
	"github.com/arnavk23/LQG-Analysis/internal/config"
	"github.com/arnavk23/LQG-Analysis/internal/report"
)

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scn, err := loadScenario()
	if err != nil {
		return err
	}
	opts, err := reportOptions(scn)
	if err != nil {
		return err
	}

	start := time.Now()
	rep, err := report.Build(opts)
	if err != nil {
		return err
	}
	slog.Info("report built",
		"figures", len(rep.Figures),
		"took", time.Since(start).Round(time.Millisecond))

	srv := api.New(serveAddr, slog.Default(), rep)

	if serveWatch {
		if configPath == "" {
			return fmt.Errorf("--watch needs --config to know which file to follow")
		}
		go watchAndRebuild(ctx, srv)
	}

	return srv.Run(ctx)
}

// watchAndRebuild follows scenario edits and swaps fresh builds into
// the running server. A failed build keeps the current report serving.
func watchAndRebuild(ctx context.Context, srv *api.Server) {
	err := config.Watch(ctx, configPath, slog.Default(), func(scn config.Scenario) {
		opts, err := reportOptions(scn)
		if err != nil {
			slog.Warn("scenario rejected", "err", err)
			return
		}
		start := time.Now()
		rep, err := report.Build(opts)
		if err != nil {
			slog.Warn("rebuild failed", "err", err)
			return
		}
		srv.ReplaceReport(rep, time.Since(start))
	})
	if err != nil {
		slog.Warn("scenario watch stopped", "err", err)
	}
}
