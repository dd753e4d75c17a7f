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

import "time"

// RawRecord is one week of data exactly as returned by the API: string-encoded
// numeric values keyed by the raw field label (e.g. "1. open").
type RawRecord map[string]string

// WeeklyRecord is one week of typed, adjusted price and volume data.
type WeeklyRecord struct {
	Date          time.Time
	Open          float64
	High          float64
	Low           float64
	Close         float64
	AdjustedClose float64
	Volume        int64
	Dividend      float64
}

// Metadata describes the series returned by the API. It is only used to
// confirm the response matches the requested ticker.
type Metadata struct {
	Information   string
	Symbol        string
	LastRefreshed string
	TimeZone      string
}

// PricePoint is one entry of a weekly adjusted close price series.
type PricePoint struct {
	Date  time.Time
	Price float64
}

// VolumePoint is one entry of a weekly volume series.
type VolumePoint struct {
	Date   time.Time
	Volume int64
}

// YearlyDividend is the total dividend paid during one calendar year.
type YearlyDividend struct {
	Year     int
	Dividend float64
}

// WeeklyVariation is the week with the largest high-low price spread.
type WeeklyVariation struct {
	Date      time.Time
	High      float64
	Low       float64
	Variation float64
}
