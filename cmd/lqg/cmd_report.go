package main

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arnavk23/LQG-Analysis/internal/report"
)

func runReport(cmd *cobra.Command, _ []string) error {
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

	out := reportOut
	if out == "" {
		out = scn.Output
	}
	n, err := rep.WriteDir(out)
	if err != nil {
		return err
	}

	slog.Info("report written",
		"dir", out,
		"figures", len(rep.Figures),
		"samples", len(rep.Samples),
		"size", humanize.Bytes(uint64(n)),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}
