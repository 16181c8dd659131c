package batch

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"stockcast/internal/archive"
	"stockcast/internal/feature"
	"stockcast/internal/forecast"
	"stockcast/internal/model"
	"stockcast/internal/provider"
	"stockcast/internal/syncer"
	"stockcast/internal/train"
)

// failingProvider serves bars for every instrument except the ones listed
// in fail.
type failingProvider struct {
	fail map[string]bool
	bars int
}

func (*failingProvider) Name() string { return "fake" }
func (*failingProvider) Close() error { return nil }

func (p *failingProvider) DailyBars(_ context.Context, instrument string, start, _ time.Time) ([]model.Bar, error) {
	if p.fail[instrument] {
		return nil, errors.New("provider down")
	}
	bars := make([]model.Bar, p.bars)
	for i := range bars {
		c := 100 + float64(i%7)
		bars[i] = model.Bar{
			Date:   model.FormatDay(start.AddDate(0, 0, i)),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 100,
		}
	}
	return bars, nil
}

var _ provider.BarProvider = (*failingProvider)(nil)

func TestRunIsolatesFailedInstrument(t *testing.T) {
	barStore := archive.NewStore(t.TempDir(), archive.JSONCodec{})
	modelStore := forecast.NewArtifactStore(t.TempDir())
	p := &failingProvider{fail: map[string]bool{"BBB": true}, bars: 65}

	s := syncer.New(barStore, p, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))
	s.SetClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) })

	runner := &Runner{
		Syncer:  s,
		Deriver: feature.Deriver{ShortWindow: 5, LongWindow: 10},
		Trainer: train.New(modelStore, 50),
		Workers: 1,
	}
	sum := runner.Run(context.Background(), []string{"AAA", "BBB", "CCC"})

	if sum.Success != 2 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 2 success / 1 failed", sum)
	}
	if sum.Trained != 2 {
		t.Fatalf("trained = %d, want 2", sum.Trained)
	}

	for _, inst := range []string{"AAA", "CCC"} {
		bars, err := barStore.Read(inst)
		if err != nil || len(bars) != 65 {
			t.Fatalf("%s archive: %d bars, err=%v", inst, len(bars), err)
		}
		if _, err := modelStore.Load(inst); err != nil {
			t.Fatalf("%s model missing: %v", inst, err)
		}
	}
	if bars, _ := barStore.Read("BBB"); len(bars) != 0 {
		t.Fatalf("failed instrument must not gain an archive")
	}
}

func TestRunSkipOutcomeIsNotFailure(t *testing.T) {
	barStore := archive.NewStore(t.TempDir(), archive.JSONCodec{})
	modelStore := forecast.NewArtifactStore(t.TempDir())
	p := &failingProvider{bars: 20} // 10 training rows, below threshold

	s := syncer.New(barStore, p, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))
	s.SetClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) })

	runner := &Runner{
		Syncer:  s,
		Deriver: feature.Deriver{ShortWindow: 5, LongWindow: 10},
		Trainer: train.New(modelStore, 50),
	}
	sum := runner.Run(context.Background(), []string{"AAA"})

	if sum.Success != 1 || sum.Failed != 0 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want success with skip", sum)
	}
	if _, err := os.Stat(modelStore.Path("AAA")); !os.IsNotExist(err) {
		t.Fatalf("skipped training must not persist an artifact")
	}
}

func TestRunWritesReport(t *testing.T) {
	barStore := archive.NewStore(t.TempDir(), archive.JSONCodec{})
	modelStore := forecast.NewArtifactStore(t.TempDir())
	p := &failingProvider{fail: map[string]bool{"BBB": true}, bars: 65}

	s := syncer.New(barStore, p, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC))
	s.SetClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) })

	reportDir := t.TempDir()
	runner := &Runner{
		Syncer:    s,
		Deriver:   feature.Deriver{ShortWindow: 5, LongWindow: 10},
		Trainer:   train.New(modelStore, 50),
		ReportDir: reportDir,
	}
	runner.Run(context.Background(), []string{"AAA", "BBB"})

	for _, name := range []string{".lastrun.success.json", ".lastrun.failed.json"} {
		if _, err := os.Stat(reportDir + "/" + name); err != nil {
			t.Fatalf("report %s missing: %v", name, err)
		}
	}
}
