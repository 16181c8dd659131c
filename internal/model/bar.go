package model

import "time"

// DateLayout is the calendar-day format used as the archive key.
const DateLayout = "2006-01-02"

// Bar represents one daily OHLCV bar.
// Shared by provider, archive and serialization (json, parquet).
// Date is the natural key: unique and ascending within one instrument's archive.
type Bar struct {
	Date   string  `json:"date" parquet:"date"` // calendar day, YYYY-MM-DD
	Open   float64 `json:"o" parquet:"o"`
	High   float64 `json:"h" parquet:"h"`
	Low    float64 `json:"l" parquet:"l"`
	Close  float64 `json:"c" parquet:"c"`
	Volume float64 `json:"v" parquet:"v"`
}

// Day parses the bar's date. Returns zero time if the date is malformed.
func (b Bar) Day() time.Time {
	t, _ := time.ParseInLocation(DateLayout, b.Date, time.UTC)
	return t
}

// FormatDay renders t as an archive date key (UTC calendar day).
func FormatDay(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
