package polygon

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"stockcast/internal/model"
)

// BarRaw is a raw aggregate bar from the API, with FlexibleFloat64 for
// fields the API sometimes emits in scientific notation or as strings.
type BarRaw struct {
	Timestamp int64           `json:"t"` // Unix timestamp in milliseconds
	Open      float64         `json:"o"`
	High      float64         `json:"h"`
	Low       float64         `json:"l"`
	Close     float64         `json:"c"`
	Volume    FlexibleFloat64 `json:"v"`
}

// ToBar converts BarRaw to model.Bar, keying by the bar's UTC calendar day.
func (br BarRaw) ToBar() model.Bar {
	return model.Bar{
		Date:   model.FormatDay(time.UnixMilli(br.Timestamp)),
		Open:   br.Open,
		High:   br.High,
		Low:    br.Low,
		Close:  br.Close,
		Volume: float64(br.Volume),
	}
}

// AggregatesResponse is the Polygon aggregates API response.
type AggregatesResponse struct {
	Ticker       string   `json:"ticker"`
	QueryCount   int      `json:"queryCount"`
	ResultsCount int      `json:"resultsCount"`
	Adjusted     bool     `json:"adjusted"`
	Results      []BarRaw `json:"results"`
	Status       string   `json:"status"`
	RequestID    string   `json:"request_id"`
	Count        int      `json:"count"`
	NextURL      string   `json:"next_url,omitempty"`
}

// FlexibleFloat64 parses a number or a numeric string to float64.
type FlexibleFloat64 float64

// UnmarshalJSON parses string or number.
func (f *FlexibleFloat64) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexibleFloat64(val)
		return nil
	}

	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*f = FlexibleFloat64(floatVal)
		return nil
	}

	return fmt.Errorf("cannot parse as float64: %s", string(data))
}
