// Command lqg is the study toolkit around the quantum-corrected black
// hole equation engine: it evaluates sweeps, renders the figure
// gallery, persists runs and serves the artifact over HTTP.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	})))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
