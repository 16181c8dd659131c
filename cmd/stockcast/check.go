package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/subcommands"
)

// checkCmd prints the archived date range and row count for one instrument.
type checkCmd struct {
	configPath string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "show archived date range for one instrument" }
func (*checkCmd) Usage() string {
	return `check [-config config.yaml] TICKER:
  Print the instrument's archived date range and trading-day count.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to YAML config file")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	instrument := strings.ToUpper(strings.TrimSpace(f.Arg(0)))

	a, err := InitializeApp(c.configPath)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitFailure
	}
	defer a.Provider.Close()

	bars, err := a.Archive.Read(instrument)
	if err != nil {
		slog.Error("failed to read archive", "instrument", instrument, "error", err)
		return subcommands.ExitFailure
	}
	if len(bars) == 0 {
		fmt.Printf("No data found for %s. Run the pipeline for it first.\n", instrument)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s data range: %s to %s\n", instrument, bars[0].Date, bars[len(bars)-1].Date)
	fmt.Printf("Total trading days downloaded: %d\n", len(bars))
	return subcommands.ExitSuccess
}
