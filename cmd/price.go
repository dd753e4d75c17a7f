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

var priceCmd = &cobra.Command{
	Use:   "price <ticker>",
	Short: "Print the weekly adjusted close price series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, to := dateRangeFlags()
		series, err := newClient(args[0]).WeeklyPrice(from, to)
		if err != nil {
			log.Fatal().Err(err).Msg("weekly price query failed")
		}
		for _, p := range series {
			fmt.Printf("%s\t%.4f\n", p.Date.Format("2006-01-02"), p.Price)
		}
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
	priceCmd.Flags().StringVar(&fromDateStr, "from", "", "start date (YYYY-MM-DD, inclusive)")
	priceCmd.Flags().StringVar(&toDateStr, "to", "", "end date (YYYY-MM-DD, inclusive)")
}
