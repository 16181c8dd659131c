package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/subcommands"

	"stockcast/internal/forecast"
	"stockcast/internal/model"
	"stockcast/internal/slogx"
)

// predictCmd forecasts the next trading day for one instrument.
type predictCmd struct {
	configPath string
}

func (*predictCmd) Name() string     { return "predict" }
func (*predictCmd) Synopsis() string { return "forecast next-day prices and signal for one instrument" }
func (*predictCmd) Usage() string {
	return `predict [-config config.yaml] TICKER:
  Load the instrument's archive and fitted model, predict the next day's
  close/high/low and print a Bullish/Bearish/Neutral signal.
`
}

func (c *predictCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", "", "path to YAML config file")
}

func (c *predictCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

	fc, err := a.Forecaster.Forecast(instrument)
	switch {
	case errors.Is(err, forecast.ErrNotAvailable):
		fmt.Printf("No data or model found for %s. Run the pipeline for it first.\n", instrument)
		return subcommands.ExitFailure
	case errors.Is(err, forecast.ErrInsufficientHistory):
		fmt.Printf("Not enough history for %s to build a feature row.\n", instrument)
		return subcommands.ExitFailure
	case err != nil:
		slog.Error("forecast failed", "instrument", instrument, "error", err)
		return subcommands.ExitFailure
	}

	printForecast(fc)
	return subcommands.ExitSuccess
}

func printForecast(fc *forecast.Forecast) {
	line := strings.Repeat("=", 50)
	forDate := model.FormatDay(time.Now().UTC().AddDate(0, 0, 1))
	fmt.Println(line)
	fmt.Printf("Forecast for %s on %s\n", fc.Instrument, forDate)
	fmt.Println(line)
	fmt.Println("Previous Day's Data:")
	fmt.Printf("  - Date:  %s\n", fc.LastDate)
	fmt.Printf("  - High:  %.2f\n", fc.LastHigh)
	fmt.Printf("  - Close: %.2f\n", fc.LastClose)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Predicted Next Day's Data:")
	fmt.Printf("  - High:  %.2f\n", fc.PredHigh)
	fmt.Printf("  - Low:   %.2f\n", fc.PredLow)
	fmt.Printf("  - Close: %.2f\n", fc.PredClose)
	fmt.Printf("\n  Signal: %s\n", fc.Signal)
	fmt.Println(line)
}
