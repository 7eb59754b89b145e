package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/arnavk23/LQG-Analysis/internal/config"
	"github.com/arnavk23/LQG-Analysis/internal/report"
)

var (
	configPath string
	verbose    bool
	reportOut  string
	serveAddr  string
	serveWatch bool
	sweepDB    string
	sweepJSON  bool

	rootCmd = &cobra.Command{
		Use:   "lqg",
		Short: "Thermodynamics of quantum-corrected black holes",
		Long: `lqg evaluates the quantum-corrected black hole equation of state,
renders the figure gallery, and serves the artifact over HTTP.

Scenarios are YAML files; every omitted key keeps its default. Without
--config the reference scenario applies: gamma 0.2375, flat space, the
(1, 20) radius window.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
					Level:      slog.LevelDebug,
					TimeFormat: "15:04:05",
				})))
			}
		},
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Render the figure gallery and sweep export to a directory",
		RunE:  runReport, // defined in cmd_report.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery, JSON endpoints and metrics over HTTP",
		RunE:  runServe, // defined in cmd_serve.go
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the sweep and print or persist it",
		RunE:  runSweep, // defined in cmd_sweep.go
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Verify the closed-form identities and domain guards",
		RunE:  runCheck, // defined in cmd_check.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"scenario YAML file (defaults apply when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log at debug level")

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "",
		"output directory (default: the scenario's output)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false,
		"rebuild when the scenario file changes")
	sweepCmd.Flags().StringVar(&sweepDB, "db", "", "SQLite file to append the run to")
	sweepCmd.Flags().BoolVar(&sweepJSON, "json", false, "print the samples as JSON on stdout")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadScenario resolves --config, falling back to the defaults.
func loadScenario() (config.Scenario, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// reportOptions maps a scenario onto the report builder.
func reportOptions(scn config.Scenario) (report.Options, error) {
	p, err := scn.Params()
	if err != nil {
		return report.Options{}, fmt.Errorf("scenario parameters: %w", err)
	}
	return report.Options{
		Params:         p,
		RMin:           scn.Grid.RMin,
		RMax:           scn.Grid.RMax,
		Points:         scn.Grid.Points,
		IsothermRatios: scn.Isotherms,
		WeakAdSLambda:  scn.WeakAdSLambda,
	}, nil
}
