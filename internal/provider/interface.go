package provider

import (
	"context"
	"time"

	"stockcast/internal/model"
)

// BarProvider is the abstraction used by the application when fetching bars
// from an external data source. Implementations own their crawl logic,
// request retries and resource cleanup.
//
// DailyBars returns daily OHLCV bars for [start, end): start inclusive,
// end exclusive. An empty result for an up-to-date range is not an error.
type BarProvider interface {
	Name() string
	DailyBars(ctx context.Context, instrument string, start, end time.Time) ([]model.Bar, error)
	Close() error
}
