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
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.uber.org/ratelimit"
)

const queryURL = "https://www.alphavantage.co/query"

// apiKeyEnv is consulted when no explicit api key is given.
const apiKeyEnv = "ALPHAVANTAGE_API_KEY"

// DataSource fetches the raw weekly adjusted payload for a ticker. The
// returned maps use the field labels of the API verbatim; typing and
// validation happen in the client.
type DataSource interface {
	WeeklyAdjusted(ctx context.Context, ticker string) (map[string]string, map[string]RawRecord, error)
}

type weeklyAdjustedResponse struct {
	Metadata     map[string]string    `json:"Meta Data"`
	Series       map[string]RawRecord `json:"Weekly Adjusted Time Series"`
	ErrorMessage string               `json:"Error Message"`
	Note         string               `json:"Note"`
}

// AlphaVantage is the production DataSource backed by the Alpha Vantage HTTP
// API.
type AlphaVantage struct {
	apiKey string
	client *resty.Client
	limit  ratelimit.Limiter
}

// NewAlphaVantage builds the data source. The api key is resolved from the
// explicit argument first and the ALPHAVANTAGE_API_KEY environment variable
// second; without either the constructor fails with ErrInvalidAPIKey.
func NewAlphaVantage(apiKey string) (*AlphaVantage, error) {
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	// alpha vantage rate limits per minute
	perMinute := viper.GetInt("alphavantage.rate_limit")
	if perMinute <= 0 {
		perMinute = 5
	}

	return &AlphaVantage{
		apiKey: apiKey,
		client: resty.New(),
		limit:  ratelimit.New(perMinute, ratelimit.Per(time.Minute)),
	}, nil
}

// WeeklyAdjusted requests the full weekly adjusted time series for ticker and
// splits the payload into its metadata and dated-records sections.
func (av *AlphaVantage) WeeklyAdjusted(ctx context.Context, ticker string) (map[string]string, map[string]RawRecord, error) {
	av.limit.Take()

	var payload weeklyAdjustedResponse
	log.Debug().Str("Ticker", ticker).Str("Url", queryURL).Msg("requesting weekly adjusted series")
	resp, err := av.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_WEEKLY_ADJUSTED",
			"symbol":     ticker,
			"outputsize": "full",
			"apikey":     av.apiKey,
		}).
		SetResult(&payload).
		Get(queryURL)
	if err != nil {
		log.Error().Str("OriginalError", err.Error()).Str("Ticker", ticker).Msg("error when requesting weekly adjusted series")
		return nil, nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}
	if resp.StatusCode() >= 400 {
		log.Error().Int("StatusCode", resp.StatusCode()).Str("Ticker", ticker).Bytes("Body", resp.Body()).Msg("error when requesting weekly adjusted series")
		return nil, nil, fmt.Errorf("%w: unexpected status code %d", ErrAPI, resp.StatusCode())
	}
	if payload.ErrorMessage != "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrAPI, payload.ErrorMessage)
	}
	if payload.Note != "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrAPI, payload.Note)
	}

	return payload.Metadata, payload.Series, nil
}
