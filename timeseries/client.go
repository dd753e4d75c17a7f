/*
Copyright 2022

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package timeseries

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// Metadata keys used by the API.
const (
	metaInformation   = "1. Information"
	metaSymbol        = "2. Symbol"
	metaLastRefreshed = "3. Last Refreshed"
	metaTimeZone      = "4. Time Zone"
)

// Client answers queries over the weekly adjusted time series of a single
// ticker. The table is fetched and built once at construction and never
// mutated afterwards; build a new Client to refresh data.
type Client struct {
	ticker  string
	records []WeeklyRecord
}

// New builds a Client for ticker backed by the live Alpha Vantage API. The
// api key is resolved from the argument first and the ALPHAVANTAGE_API_KEY
// environment variable second.
func New(ctx context.Context, ticker string, apiKey string) (*Client, error) {
	src, err := NewAlphaVantage(apiKey)
	if err != nil {
		return nil, err
	}
	return NewFromSource(ctx, ticker, src)
}

// NewFromSource builds a Client with an injected DataSource. Construction
// performs the (blocking) fetch, validates the metadata against the requested
// ticker, and builds the sorted table; any failure aborts construction.
func NewFromSource(ctx context.Context, ticker string, src DataSource) (*Client, error) {
	meta, series, err := src.WeeklyAdjusted(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := validateMetadata(meta, ticker); err != nil {
		return nil, err
	}

	records, err := buildTable(series)
	if err != nil {
		return nil, err
	}

	return &Client{
		ticker:  ticker,
		records: records,
	}, nil
}

// validateMetadata confirms the response describes the requested ticker and
// not a mismatched or empty instrument.
func validateMetadata(raw map[string]string, ticker string) error {
	meta := Metadata{
		Information:   raw[metaInformation],
		Symbol:        raw[metaSymbol],
		LastRefreshed: raw[metaLastRefreshed],
		TimeZone:      raw[metaTimeZone],
	}
	if meta.Symbol != ticker {
		return fmt.Errorf("%w: Metadata field '2. Symbol' not found", ErrInvalidData)
	}
	log.Info().Str("Ticker", ticker).Str("LastRefreshed", meta.LastRefreshed).Str("TimeZone", meta.TimeZone).Msg("metadata symbol matches requested ticker")
	return nil
}

// Ticker returns the symbol the client was built for.
func (c *Client) Ticker() string {
	return c.ticker
}

// WeeklyPrice returns the weekly adjusted close price series, restricted to
// the inclusive [from, to] date range. A nil bound leaves that end open.
func (c *Client) WeeklyPrice(from, to *time.Time) ([]PricePoint, error) {
	if err := checkDateRange(from, to); err != nil {
		return nil, err
	}

	rows := filterByDate(c.records, from, to)
	series := make([]PricePoint, 0, len(rows))
	for _, r := range rows {
		series = append(series, PricePoint{Date: r.Date, Price: r.AdjustedClose})
	}
	return series, nil
}

// WeeklyVolume returns the weekly volume series, restricted to the inclusive
// [from, to] date range. A nil bound leaves that end open.
func (c *Client) WeeklyVolume(from, to *time.Time) ([]VolumePoint, error) {
	if err := checkDateRange(from, to); err != nil {
		return nil, err
	}

	rows := filterByDate(c.records, from, to)
	series := make([]VolumePoint, 0, len(rows))
	for _, r := range rows {
		series = append(series, VolumePoint{Date: r.Date, Volume: r.Volume})
	}
	return series, nil
}

// YearlyDividends returns the total dividend paid per calendar year,
// restricted to the inclusive [fromYear, toYear] range. Only weeks with a
// positive dividend contribute; a year with no paid dividend is absent from
// the result, never present with a zero total.
func (c *Client) YearlyDividends(fromYear, toYear *int) ([]YearlyDividend, error) {
	if fromYear != nil && toYear != nil && *fromYear > *toYear {
		return nil, fmt.Errorf("%w: 'from_year' cannot be greater than 'to_year'", ErrParam)
	}

	totals := make(map[int]float64)
	for _, r := range c.records {
		if r.Dividend <= 0 {
			continue
		}
		year := r.Date.Year()
		if fromYear != nil && year < *fromYear {
			continue
		}
		if toYear != nil && year > *toYear {
			continue
		}
		totals[year] += r.Dividend
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearlyDividend, 0, len(years))
	for _, y := range years {
		out = append(out, YearlyDividend{Year: y, Dividend: totals[y]})
	}
	return out, nil
}

// HighestWeeklyVariation returns the week with the largest high-low spread in
// the inclusive [from, to] date range. When several weeks share the maximum
// spread the earliest one wins.
func (c *Client) HighestWeeklyVariation(from, to *time.Time) (WeeklyVariation, error) {
	var best WeeklyVariation

	if err := checkDateRange(from, to); err != nil {
		return best, err
	}

	rows := filterByDate(c.records, from, to)
	if len(rows) == 0 {
		return best, fmt.Errorf("%w: No data available for the specified date range.", ErrInvalidData)
	}

	best = WeeklyVariation{
		Date:      rows[0].Date,
		High:      rows[0].High,
		Low:       rows[0].Low,
		Variation: rows[0].High - rows[0].Low,
	}
	for _, r := range rows[1:] {
		if v := r.High - r.Low; v > best.Variation {
			best = WeeklyVariation{Date: r.Date, High: r.High, Low: r.Low, Variation: v}
		}
	}
	return best, nil
}
