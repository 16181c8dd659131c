package forecast

import (
	"errors"
	"fmt"

	"stockcast/internal/archive"
	"stockcast/internal/feature"
)

// ErrNotAvailable reports that the archive or model artifact for the
// requested instrument does not exist; run the pipeline for it first.
var ErrNotAvailable = errors.New("archive or model not available")

// ErrInsufficientHistory reports that the archive holds too few bars to
// produce a single fully-populated feature row.
var ErrInsufficientHistory = errors.New("insufficient history for a feature row")

// Forecast is one forward point estimate for an instrument, with the last
// actuals it was compared against.
type Forecast struct {
	Instrument string
	LastDate   string
	LastHigh   float64
	LastClose  float64

	PredClose float64
	PredHigh  float64
	PredLow   float64
	Signal    Signal
}

// Forecaster loads an instrument's archive and fitted model and produces a
// next-day forecast with a discrete signal. It has no side effects.
type Forecaster struct {
	archive   *archive.Store
	models    *ArtifactStore
	deriver   feature.Deriver
	threshold float64
}

// NewForecaster wires a Forecaster. threshold is the neutral band half-width
// as a relative move (e.g. 0.005 for 0.5%).
func NewForecaster(a *archive.Store, m *ArtifactStore, d feature.Deriver, threshold float64) *Forecaster {
	return &Forecaster{archive: a, models: m, deriver: d, threshold: threshold}
}

// Forecast predicts the next bar's close/high/low for an instrument and
// classifies the close move. Reports ErrNotAvailable if the archive or model
// is missing, ErrInsufficientHistory if no eligible feature row exists.
func (f *Forecaster) Forecast(instrument string) (*Forecast, error) {
	bars, err := f.archive.Read(instrument)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("archive for %s: %w", instrument, ErrNotAvailable)
	}
	model, err := f.models.Load(instrument)
	if err != nil {
		return nil, err
	}

	rows := f.deriver.Derive(bars, false)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s has %d bars: %w", instrument, len(bars), ErrInsufficientHistory)
	}
	latest := rows[len(rows)-1]

	predClose, predHigh, predLow, err := model.Predict(latest)
	if err != nil {
		return nil, err
	}

	last := bars[len(bars)-1]
	return &Forecast{
		Instrument: instrument,
		LastDate:   last.Date,
		LastHigh:   last.High,
		LastClose:  last.Close,
		PredClose:  predClose,
		PredHigh:   predHigh,
		PredLow:    predLow,
		Signal:     Classify(predClose, last.Close, f.threshold),
	}, nil
}
