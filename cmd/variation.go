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

var variationCmd = &cobra.Command{
	Use:   "variation <ticker>",
	Short: "Print the week with the largest high-low price spread",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from, to := dateRangeFlags()
		v, err := newClient(args[0]).HighestWeeklyVariation(from, to)
		if err != nil {
			log.Fatal().Err(err).Msg("highest weekly variation query failed")
		}
		fmt.Printf("%s\thigh=%.4f\tlow=%.4f\tvariation=%.4f\n",
			v.Date.Format("2006-01-02"), v.High, v.Low, v.Variation)
	},
}

func init() {
	rootCmd.AddCommand(variationCmd)
	variationCmd.Flags().StringVar(&fromDateStr, "from", "", "start date (YYYY-MM-DD, inclusive)")
	variationCmd.Flags().StringVar(&toDateStr, "to", "", "end date (YYYY-MM-DD, inclusive)")
}
