package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	lqg "github.com/arnavk23/LQG-Analysis"
	"github.com/arnavk23/LQG-Analysis/internal/store"
)

func runSweep(cmd *cobra.Command, _ []string) error {
	scn, err := loadScenario()
	if err != nil {
		return err
	}
	cfg, err := scn.SweepConfig()
	if err != nil {
		return err
	}

	samples := lqg.Sweep(cfg)
	withMass := 0
	for _, s := range samples {
		if s.M.Defined {
			withMass++
		}
	}
	slog.Info("sweep evaluated",
		"points", humanize.Comma(int64(len(samples))),
		"with_mass", withMass,
		"gamma", cfg.Params.Gamma,
		"lambda", cfg.Params.Lambda)

	if sweepJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(samples); err != nil {
			return fmt.Errorf("encode samples: %w", err)
		}
	}

	if sweepDB != "" {
		st, err := store.Open(sweepDB)
		if err != nil {
			return err
		}
		defer st.Close()

		run := store.NewRun(cfg)
		if err := st.SaveRun(run, samples); err != nil {
			return err
		}
		slog.Info("run saved", "id", run.ID, "db", sweepDB)
	}
	return nil
}
