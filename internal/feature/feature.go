// Package feature turns a bar table into the predictor/label rows the model
// consumes. Derivation is a pure function of the input bars: no I/O, no
// clock, no state.
package feature

import "stockcast/internal/model"

// Row is one derived record aligned to one bar.
//
// Predictors are always set. Target fields are set only on rows produced
// with labels; they hold the next bar's close/high/low.
type Row struct {
	Date    string
	Return  float64 // close over previous close, minus one
	MAShort float64 // mean close of the trailing short window
	MALong  float64 // mean close of the trailing long window

	TargetClose float64
	TargetHigh  float64
	TargetLow   float64
}

// Predictors returns the model input vector for the row.
func (r Row) Predictors() []float64 {
	return []float64{r.Return, r.MAShort, r.MALong}
}

// Targets returns the label vector for a training row.
func (r Row) Targets() []float64 {
	return []float64{r.TargetClose, r.TargetHigh, r.TargetLow}
}

// Deriver computes feature rows with fixed rolling-window lengths.
// LongWindow must be greater than ShortWindow and at least 2.
type Deriver struct {
	ShortWindow int
	LongWindow  int
}

// Derive computes one row per bar position where every required field is
// defined: the rolling windows are fully populated, the previous close
// exists, and, when withLabels is set, a next bar exists. Short inputs yield
// an empty result, not an error. Output order follows bar order (ascending
// by date).
func (d Deriver) Derive(bars []model.Bar, withLabels bool) []Row {
	if len(bars) < d.LongWindow {
		return nil
	}
	last := len(bars) - 1
	if withLabels {
		last-- // the final bar has no successor to label with
	}

	var rows []Row
	// LongWindow >= 2 guarantees bars[i-1] exists from the first eligible i.
	for i := d.LongWindow - 1; i <= last; i++ {
		row := Row{
			Date:    bars[i].Date,
			Return:  bars[i].Close/bars[i-1].Close - 1,
			MAShort: meanClose(bars[i+1-d.ShortWindow : i+1]),
			MALong:  meanClose(bars[i+1-d.LongWindow : i+1]),
		}
		if withLabels {
			row.TargetClose = bars[i+1].Close
			row.TargetHigh = bars[i+1].High
			row.TargetLow = bars[i+1].Low
		}
		rows = append(rows, row)
	}
	return rows
}

func meanClose(bars []model.Bar) float64 {
	var sum float64
	for _, b := range bars {
		sum += b.Close
	}
	return sum / float64(len(bars))
}
