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
	"errors"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T) *AlphaVantage {
	t.Helper()
	av, err := NewAlphaVantage("TEST")
	require.NoError(t, err)
	httpmock.ActivateNonDefault(av.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return av
}

func ibmPayload() map[string]interface{} {
	return map[string]interface{}{
		"Meta Data": metaFor("IBM"),
		"Weekly Adjusted Time Series": map[string]RawRecord{
			"2023-10-06": rawWeek("135.00", "139.00", "134.00", "137.00", "137.00", "800000", "1.65"),
			"2023-10-13": rawWeek("138.00", "142.00", "137.00", "140.00", "140.00", "700000", "1.65"),
		},
	}
}

func TestNewAlphaVantageKeyResolution(t *testing.T) {
	t.Run("explicit argument", func(t *testing.T) {
		av, err := NewAlphaVantage("EXPLICIT")
		require.NoError(t, err)
		assert.Equal(t, "EXPLICIT", av.apiKey)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "FAKE_API_KEY_FROM_ENV")
		av, err := NewAlphaVantage("")
		require.NoError(t, err)
		assert.Equal(t, "FAKE_API_KEY_FROM_ENV", av.apiKey)
	})

	t.Run("argument wins over environment", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "FROM_ENV")
		av, err := NewAlphaVantage("FROM_ARG")
		require.NoError(t, err)
		assert.Equal(t, "FROM_ARG", av.apiKey)
	})

	t.Run("no key available", func(t *testing.T) {
		t.Setenv(apiKeyEnv, "")
		_, err := NewAlphaVantage("")
		require.ErrorIs(t, err, ErrInvalidAPIKey)
	})
}

func TestWeeklyAdjustedSuccess(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewJsonResponderOrPanic(200, ibmPayload()))

	meta, series, err := av.WeeklyAdjusted(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Equal(t, "IBM", meta[metaSymbol])
	require.Len(t, series, 2)
	assert.Equal(t, "135.00", series["2023-10-06"][fieldOpen])
	assert.Equal(t, "700000", series["2023-10-13"][fieldVolume])
}

func TestWeeklyAdjustedConnectionError(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewErrorResponder(errors.New("simulated connection failure")))

	_, _, err := av.WeeklyAdjusted(context.Background(), "IBM")
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "error contacting the Alpha Vantage API")
	assert.Contains(t, err.Error(), "simulated connection failure")
}

func TestWeeklyAdjustedHTTPError(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewStringResponder(503, "service unavailable"))

	_, _, err := av.WeeklyAdjusted(context.Background(), "IBM")
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "503")
}

func TestWeeklyAdjustedServiceError(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"Error Message": "Invalid API call. Please retry or visit the documentation",
		}))

	_, _, err := av.WeeklyAdjusted(context.Background(), "UNKNOWN")
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "Invalid API call")
}

func TestWeeklyAdjustedThrottleNote(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day.",
		}))

	_, _, err := av.WeeklyAdjusted(context.Background(), "IBM")
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestNewAgainstMockedAPI(t *testing.T) {
	av := newTestSource(t)
	httpmock.RegisterResponder("GET", queryURL,
		httpmock.NewJsonResponderOrPanic(200, ibmPayload()))

	client, err := NewFromSource(context.Background(), "IBM", av)
	require.NoError(t, err)
	assert.Equal(t, "IBM", client.Ticker())

	series, err := client.WeeklyPrice(nil, nil)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, day(2023, time.October, 6), series[0].Date)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["GET "+queryURL])
}
