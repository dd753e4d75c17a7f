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

import "errors"

var (
	// ErrInvalidAPIKey indicates that no api key was given and none could be
	// resolved from the environment.
	ErrInvalidAPIKey = errors.New("no Alpha Vantage api key available")

	// ErrAPI indicates that the request to the API failed, either at the
	// transport level or because the service reported an unsuccessful access.
	ErrAPI = errors.New("error contacting the Alpha Vantage API")

	// ErrInvalidData indicates that the response payload is empty, does not
	// match the requested ticker, is structurally malformed, or that a query
	// requiring data matched no rows.
	ErrInvalidData = errors.New("invalid time series data")

	// ErrParam indicates that the caller supplied an invalid query range.
	ErrParam = errors.New("invalid query parameter")
)
