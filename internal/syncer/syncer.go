package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"stockcast/internal/archive"
	"stockcast/internal/model"
	"stockcast/internal/provider"
)

// Synchronizer brings one instrument's archive up to date: it determines the
// minimal fetch range from archive state, merges fetched bars without
// duplicates, and persists the result before returning it.
type Synchronizer struct {
	store    *archive.Store
	provider provider.BarProvider
	epoch    time.Time        // fetch-start for an empty archive
	now      func() time.Time // injectable clock
}

// New creates a Synchronizer. epoch is the earliest date fetched for
// instruments with no archive yet.
func New(store *archive.Store, p provider.BarProvider, epoch time.Time) *Synchronizer {
	return &Synchronizer{store: store, provider: p, epoch: epoch, now: time.Now}
}

// SetClock overrides the clock (tests).
func (s *Synchronizer) SetClock(now func() time.Time) { s.now = now }

// Sync updates the archive for one instrument and returns the full bar table.
// Running twice on the same day is a no-op: no duplicate fetch, no data change.
// Only this instrument's archive is touched.
func (s *Synchronizer) Sync(ctx context.Context, instrument string) ([]model.Bar, error) {
	existing, err := s.store.Read(instrument)
	if err != nil {
		return nil, err
	}

	start := s.epoch
	if len(existing) > 0 {
		start = existing[len(existing)-1].Day().AddDate(0, 0, 1)
	}
	today := s.now().UTC()
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if !start.Before(end) {
		slog.Debug("archive up to date", "instrument", instrument, "bars", len(existing))
		return existing, nil
	}

	fetched, err := s.provider.DailyBars(ctx, instrument, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s [%s, %s): %w",
			instrument, model.FormatDay(start), model.FormatDay(end), err)
	}
	if len(fetched) == 0 {
		slog.Debug("no new bars", "instrument", instrument, "from", model.FormatDay(start))
		return existing, nil
	}

	merged := Merge(existing, fetched)
	if err := s.store.WriteAll(instrument, merged); err != nil {
		return nil, err
	}
	slog.Info("archive updated", "instrument", instrument, "new_bars", len(fetched), "total_bars", len(merged))
	return merged, nil
}

// Merge combines existing and fetched bars into one table keyed by date,
// ascending, no duplicates. On a date collision the fetched bar wins, so a
// refetched in-progress trading day overwrites its stale entry.
func Merge(existing, fetched []model.Bar) []model.Bar {
	byDate := make(map[string]model.Bar, len(existing)+len(fetched))
	for _, b := range existing {
		byDate[b.Date] = b
	}
	for _, b := range fetched {
		byDate[b.Date] = b
	}
	merged := make([]model.Bar, 0, len(byDate))
	for _, b := range byDate {
		merged = append(merged, b)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	return merged
}
