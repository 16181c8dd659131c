package forecast

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"stockcast/internal/feature"
)

// Artifact is a fitted mapping from a feature row's predictors to the three
// forward labels. The three targets are fit jointly in a single least-squares
// solve against the 3-column label matrix, and predicted together from one
// call.
type Artifact struct {
	Instrument string    `json:"instrument"`
	TrainedAt  time.Time `json:"trained_at"`
	Rows       int       `json:"rows"`

	Predictors []string `json:"predictors"`
	Targets    []string `json:"targets"`

	// Coeffs is (1+len(Predictors)) x len(Targets); row 0 is the intercept.
	Coeffs [][]float64 `json:"coeffs"`
}

var (
	predictorNames = []string{"return", "ma_short", "ma_long"}
	targetNames    = []string{"target_close", "target_high", "target_low"}
)

// Fit solves the joint multi-output least-squares regression over labeled
// feature rows. Callers enforce any minimum row count; Fit only requires
// enough rows for the system to be overdetermined.
func Fit(instrument string, rows []feature.Row) (*Artifact, error) {
	np, nt := len(predictorNames), len(targetNames)
	if len(rows) <= np {
		return nil, fmt.Errorf("fit %s: need more than %d rows, got %d", instrument, np, len(rows))
	}

	x := mat.NewDense(len(rows), np+1, nil)
	y := mat.NewDense(len(rows), nt, nil)
	for i, r := range rows {
		x.Set(i, 0, 1) // intercept
		for j, v := range r.Predictors() {
			x.Set(i, j+1, v)
		}
		for j, v := range r.Targets() {
			y.Set(i, j, v)
		}
	}

	var beta mat.Dense
	if err := beta.Solve(x, y); err != nil {
		// A Condition error is a conditioning warning, not a failure.
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("fit %s: %w", instrument, err)
		}
	}

	coeffs := make([][]float64, np+1)
	for i := range coeffs {
		coeffs[i] = make([]float64, nt)
		for j := 0; j < nt; j++ {
			coeffs[i][j] = beta.At(i, j)
		}
	}

	return &Artifact{
		Instrument: instrument,
		TrainedAt:  time.Now().UTC(),
		Rows:       len(rows),
		Predictors: predictorNames,
		Targets:    targetNames,
		Coeffs:     coeffs,
	}, nil
}

// Predict maps one feature row to (close, high, low) for the next bar.
func (a *Artifact) Predict(row feature.Row) (predClose, predHigh, predLow float64, err error) {
	preds := row.Predictors()
	if len(a.Coeffs) != len(preds)+1 {
		return 0, 0, 0, fmt.Errorf("artifact for %s has %d coefficient rows, want %d",
			a.Instrument, len(a.Coeffs), len(preds)+1)
	}
	out := make([]float64, len(a.Targets))
	for j := range out {
		out[j] = a.Coeffs[0][j]
		for i, v := range preds {
			out[j] += a.Coeffs[i+1][j] * v
		}
	}
	return out[0], out[1], out[2], nil
}
