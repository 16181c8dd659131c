// Package batch runs the sync→derive→train cycle over a list of instruments.
// Instruments share no mutable state, so the only permitted parallelism is
// across distinct instruments; within one instrument the cycle completes,
// including persistence, before its result is reported.
package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stockcast/internal/feature"
	"stockcast/internal/syncer"
	"stockcast/internal/train"
)

// Result is sent by workers for fan-in, one per instrument.
type Result struct {
	Instrument string
	Ok         bool
	Bars       int
	Outcome    train.Outcome
	Reason     string // set when Ok is false
}

// Runner orchestrates one batch run.
type Runner struct {
	Syncer  *syncer.Synchronizer
	Deriver feature.Deriver
	Trainer *train.Trainer

	Workers   int           // goroutines across distinct instruments; 1 = sequential
	Pacing    time.Duration // delay after each provider call, for rate limits
	ReportDir string        // where run reports land; empty disables reports
}

// Summary aggregates one batch run.
type Summary struct {
	Success int
	Failed  int
	Trained int
	Skipped int
}

// Run processes every instrument. A failure on one instrument never blocks
// the others; it is logged, counted and listed in the run report.
func (r *Runner) Run(ctx context.Context, instruments []string) Summary {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(instruments) {
		workers = len(instruments)
	}

	pending := make(chan string, len(instruments))
	for _, inst := range instruments {
		pending <- inst
	}
	close(pending)

	results := make(chan Result, len(instruments))
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for inst := range pending {
				if ctx.Err() != nil {
					return
				}
				results <- r.runOne(ctx, inst)
				if r.Pacing > 0 {
					time.Sleep(r.Pacing)
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	var sum Summary
	var successList []string
	var failedList []failedEntry
	for res := range results {
		if !res.Ok {
			sum.Failed++
			failedList = append(failedList, failedEntry{Instrument: res.Instrument, Reason: res.Reason})
			continue
		}
		switch res.Outcome.Status {
		case train.Trained:
			sum.Success++
			sum.Trained++
			successList = append(successList, res.Instrument)
		case train.Skipped:
			sum.Success++
			sum.Skipped++
			successList = append(successList, res.Instrument)
		case train.Failed:
			sum.Failed++
			failedList = append(failedList, failedEntry{Instrument: res.Instrument, Reason: res.Outcome.Err.Error()})
		}
	}

	slog.Info("batch done",
		"instruments", len(instruments),
		"success", sum.Success, "failed", sum.Failed,
		"trained", sum.Trained, "skipped", sum.Skipped)
	if len(failedList) > 0 {
		slog.Info("batch failures", "count", len(failedList), "reasons", joinFailedReasons(failedList))
	}
	if r.ReportDir != "" && (len(successList) > 0 || len(failedList) > 0) {
		if err := writeRunReport(r.ReportDir, successList, failedList); err != nil {
			slog.Warn("could not write run report", "error", err)
		}
	}
	return sum
}

// runOne runs the full cycle for one instrument. Errors stay inside the
// returned Result; nothing here aborts sibling instruments.
func (r *Runner) runOne(ctx context.Context, instrument string) Result {
	bars, err := r.Syncer.Sync(ctx, instrument)
	if err != nil {
		slog.Error("sync failed", "instrument", instrument, "error", err)
		return Result{Instrument: instrument, Reason: err.Error()}
	}
	if len(bars) == 0 {
		slog.Warn("no data", "instrument", instrument)
		return Result{Instrument: instrument, Reason: "no data"}
	}

	rows := r.Deriver.Derive(bars, true)
	outcome := r.Trainer.Train(instrument, rows)
	switch outcome.Status {
	case train.Trained:
		slog.Info("model trained", "instrument", instrument, "rows", outcome.Rows)
	case train.Skipped:
		slog.Info("training skipped", "instrument", instrument, "reason", outcome.Reason)
	case train.Failed:
		slog.Error("training failed", "instrument", instrument, "error", outcome.Err)
	}
	return Result{Instrument: instrument, Ok: true, Bars: len(bars), Outcome: outcome}
}
