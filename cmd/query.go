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
package cmd

import (
	"context"
	"time"

	"github.com/penny-vault/alphavantage/timeseries"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	fromDateStr string
	toDateStr   string
	fromYear    int
	toYear      int
)

// newClient fetches the weekly adjusted series for ticker and returns a
// ready-to-query client.
func newClient(ticker string) *timeseries.Client {
	client, err := timeseries.New(context.Background(), ticker, viper.GetString("alphavantage.api_key"))
	if err != nil {
		log.Fatal().Err(err).Str("Ticker", ticker).Msg("could not build time series client")
	}
	return client
}

// dateRangeFlags parses the --from/--to flags into optional bounds.
func dateRangeFlags() (from *time.Time, to *time.Time) {
	return parseDateFlag("from", fromDateStr), parseDateFlag("to", toDateStr)
}

func parseDateFlag(name string, value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatal().Str("OriginalError", err.Error()).Str("Flag", name).Str("Value", value).Msg("invalid date, expected YYYY-MM-DD")
	}
	return &d
}

// yearRangeFlags converts the --from-year/--to-year flags into optional
// bounds; zero means the flag was not given.
func yearRangeFlags() (from *int, to *int) {
	if fromYear > 0 {
		from = &fromYear
	}
	if toYear > 0 {
		to = &toYear
	}
	return from, to
}
