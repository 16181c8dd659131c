// Package train fits and persists per-instrument models. Routine
// insufficient-data conditions are skip outcomes, not errors, so batch
// orchestration can branch on outcome without exception machinery.
package train

import (
	"fmt"

	"stockcast/internal/feature"
	"stockcast/internal/forecast"
)

// Status tags a training outcome.
type Status int

const (
	Trained Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Trained:
		return "trained"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the result of one training attempt.
type Outcome struct {
	Instrument string
	Status     Status
	Rows       int
	Reason     string // set when Skipped
	Err        error  // set when Failed
}

// Trainer fits one model per instrument and persists the artifact,
// overwriting any prior artifact unconditionally.
type Trainer struct {
	models  *forecast.ArtifactStore
	minRows int
}

// New creates a Trainer. minRows is the minimum labeled row count below
// which training is skipped.
func New(models *forecast.ArtifactStore, minRows int) *Trainer {
	return &Trainer{models: models, minRows: minRows}
}

// Train fits the joint regression over labeled rows and saves the artifact.
// Below minRows the outcome is Skipped; fit or persistence problems yield
// Failed, never a panic, so a batch run continues with other instruments.
func (t *Trainer) Train(instrument string, rows []feature.Row) Outcome {
	if len(rows) < t.minRows {
		return Outcome{
			Instrument: instrument,
			Status:     Skipped,
			Rows:       len(rows),
			Reason:     fmt.Sprintf("not enough data for training (%d rows, need %d)", len(rows), t.minRows),
		}
	}
	artifact, err := forecast.Fit(instrument, rows)
	if err != nil {
		return Outcome{Instrument: instrument, Status: Failed, Rows: len(rows), Err: err}
	}
	if err := t.models.Save(artifact); err != nil {
		return Outcome{Instrument: instrument, Status: Failed, Rows: len(rows), Err: err}
	}
	return Outcome{Instrument: instrument, Status: Trained, Rows: len(rows)}
}
