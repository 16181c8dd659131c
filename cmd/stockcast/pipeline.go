package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"stockcast/internal/app"
	"stockcast/internal/slogx"
)

// pipelineCmd runs the batch sync → feature → train cycle over every
// instrument in the configured list.
type pipelineCmd struct {
	configPath string
}

func (*pipelineCmd) Name() string     { return "pipeline" }
func (*pipelineCmd) Synopsis() string { return "sync archives and train models for all instruments" }
func (*pipelineCmd) Usage() string {
	return `pipeline [-config config.yaml]:
  Sync each instrument's bar archive from the provider, derive features
  and fit its next-day model.
`
}

func (c *pipelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to YAML config file")
}

func (c *pipelineCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp(c.configPath)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Provider.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using data provider", "provider", a.Provider.Name())

	instruments, err := app.LoadInstruments(cfg.InstrumentsFile)
	if err != nil {
		slog.Error("failed to load instruments", "error", err)
		return subcommands.ExitFailure
	}

	for _, dir := range []string{cfg.DataDir, cfg.ModelDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("failed to create dir", "dir", dir, "error", err)
			return subcommands.ExitFailure
		}
	}
	slog.Info("pipeline start",
		"instruments", len(instruments),
		"data_dir", cfg.DataDir, "model_dir", cfg.ModelDir,
		"format", cfg.ArchiveFormat, "workers", cfg.Workers)

	a.Runner.Run(ctx, instruments)
	return subcommands.ExitSuccess
}
