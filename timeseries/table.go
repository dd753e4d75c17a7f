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
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Raw field labels used by the TIME_SERIES_WEEKLY_ADJUSTED endpoint. Each
// record must carry EXACTLY these seven labels; anything missing or extra
// fails the whole build.
const (
	fieldOpen          = "1. open"
	fieldHigh          = "2. high"
	fieldLow           = "3. low"
	fieldClose         = "4. close"
	fieldAdjustedClose = "5. adjusted close"
	fieldVolume        = "6. volume"
	fieldDividend      = "7. dividend amount"
)

var weeklyFields = []string{
	fieldOpen,
	fieldHigh,
	fieldLow,
	fieldClose,
	fieldAdjustedClose,
	fieldVolume,
	fieldDividend,
}

// buildTable converts the raw dated-records map into a table of typed weekly
// records sorted by ascending date. Either every record converts or the build
// fails; a partially typed table is never returned.
func buildTable(raw map[string]RawRecord) ([]WeeklyRecord, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: No weekly adjusted time series data found in API response.", ErrInvalidData)
	}

	records := make([]WeeklyRecord, 0, len(raw))
	for day, rec := range raw {
		r, err := parseRecord(day, rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %s: %v", ErrInvalidData, day, err)
		}
		records = append(records, r)
	}

	// every downstream range query relies on the ascending order
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

// parseRecord converts a single raw record into a WeeklyRecord. It is STRICT
// about the label set and the numeric formats.
func parseRecord(day string, rec RawRecord) (WeeklyRecord, error) {
	var r WeeklyRecord

	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return r, fmt.Errorf("invalid date %q: %v", day, err)
	}
	r.Date = d

	if len(rec) != len(weeklyFields) {
		return r, fmt.Errorf("expected %d fields, got %d", len(weeklyFields), len(rec))
	}
	for label := range rec {
		known := false
		for _, f := range weeklyFields {
			if label == f {
				known = true
				break
			}
		}
		if !known {
			return r, fmt.Errorf("unexpected field %q", label)
		}
	}

	if r.Open, err = floatField(rec, fieldOpen); err != nil {
		return r, err
	}
	if r.High, err = floatField(rec, fieldHigh); err != nil {
		return r, err
	}
	if r.Low, err = floatField(rec, fieldLow); err != nil {
		return r, err
	}
	if r.Close, err = floatField(rec, fieldClose); err != nil {
		return r, err
	}
	if r.AdjustedClose, err = floatField(rec, fieldAdjustedClose); err != nil {
		return r, err
	}
	if r.Volume, err = intField(rec, fieldVolume); err != nil {
		return r, err
	}
	if r.Dividend, err = floatField(rec, fieldDividend); err != nil {
		return r, err
	}

	return r, nil
}

func floatField(rec RawRecord, label string) (float64, error) {
	s, ok := rec[label]
	if !ok {
		return 0, fmt.Errorf("missing field %q", label)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %q: %v", label, err)
	}
	return v, nil
}

func intField(rec RawRecord, label string) (int64, error) {
	s, ok := rec[label]
	if !ok {
		return 0, fmt.Errorf("missing field %q", label)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %q: %v", label, err)
	}
	return v, nil
}

// checkDateRange validates an optional [from, to] pair before any filtering
// happens.
func checkDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: 'from_date' cannot be greater than 'to_date'", ErrParam)
	}
	return nil
}

// filterByDate returns the rows with date in [from, to]. Both bounds are
// inclusive; a nil bound leaves that end of the range open. The input must be
// sorted by ascending date.
func filterByDate(records []WeeklyRecord, from, to *time.Time) []WeeklyRecord {
	out := make([]WeeklyRecord, 0, len(records))
	for _, r := range records {
		if from != nil && r.Date.Before(*from) {
			continue
		}
		if to != nil && r.Date.After(*to) {
			break
		}
		out = append(out, r)
	}
	return out
}
