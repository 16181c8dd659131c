package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stockcast/internal/model"
)

const (
	// Max results per aggregates request; daily bars stay far under this
	// even for a decade of history.
	maxLimit = 50000

	maxRetries = 3
	retryDelay = 15 * time.Second
)

// buildDailyAggregatesRequest builds GET request for 1-day aggregates (adjusted, limit, sort, apiKey).
// from and to are calendar days, both inclusive on the API side.
func (c *Client) buildDailyAggregatesRequest(ctx context.Context, instrument, from, to string) (*http.Request, error) {
	rawURL := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s", c.baseURL, instrument, from, to)
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	q := u.Query()
	q.Set("adjusted", "true")
	q.Set("limit", strconv.Itoa(maxLimit))
	q.Set("sort", "asc")
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Connection", "close")
	return req, nil
}

// doAggregatesRequest runs one GET request with retries. Retries on transport
// errors and 429; other non-200 statuses fail immediately.
// Returns (nil, nil) when status is DELAYED (caller treats range as empty).
func (c *Client) doAggregatesRequest(req *http.Request) (*AggregatesResponse, error) {
	client := c.client
	if client == nil {
		client = http.DefaultClient
	}
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, err := client.Do(req)
		if err != nil {
			if attempt < maxRetries {
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf("API call failed after %d attempts: %w", maxRetries, err)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests {
				if attempt < maxRetries {
					time.Sleep(retryDelay)
					continue
				}
				return nil, fmt.Errorf("API rate limit (429) after %d attempts: %s", maxRetries, string(body))
			}
			return nil, fmt.Errorf("API status %d: %s", resp.StatusCode, string(body))
		}

		var result AggregatesResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			if attempt < maxRetries {
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		resp.Body.Close()

		if result.Status != "OK" {
			if result.Status == "DELAYED" {
				return nil, nil
			}
			return nil, fmt.Errorf("API status not OK: %s", result.Status)
		}
		return &result, nil
	}
	return nil, fmt.Errorf("no response")
}

// DailyBars fetches daily aggregates for [start, end): start inclusive,
// end exclusive, per the synchronizer's fetch contract. The API treats its
// "to" bound as inclusive, so the request covers start .. end-1day.
func (c *Client) DailyBars(ctx context.Context, instrument string, start, end time.Time) ([]model.Bar, error) {
	last := end.AddDate(0, 0, -1)
	if last.Before(start) {
		return nil, nil
	}
	req, err := c.buildDailyAggregatesRequest(ctx, instrument, model.FormatDay(start), model.FormatDay(last))
	if err != nil {
		return nil, err
	}
	resp, err := c.doAggregatesRequest(req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil // DELAYED
	}
	bars := make([]model.Bar, 0, len(resp.Results))
	for _, raw := range resp.Results {
		bars = append(bars, raw.ToBar())
	}
	return bars, nil
}
