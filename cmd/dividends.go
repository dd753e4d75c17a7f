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
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dividendsCmd = &cobra.Command{
	Use:   "dividends <ticker>",
	Short: "Print the total dividend paid per calendar year",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, to := yearRangeFlags()
		series, err := newClient(args[0]).YearlyDividends(from, to)
		if err != nil {
			log.Fatal().Err(err).Msg("yearly dividends query failed")
		}
		for _, p := range series {
			fmt.Printf("%d\t%.4f\n", p.Year, p.Dividend)
		}
	},
}

func init() {
	rootCmd.AddCommand(dividendsCmd)
	dividendsCmd.Flags().IntVar(&fromYear, "from-year", 0, "first year to include (inclusive)")
	dividendsCmd.Flags().IntVar(&toYear, "to-year", 0, "last year to include (inclusive)")
}
