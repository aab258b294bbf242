/*
Copyright 2020 Google LLC

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
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/analysis"
	"github.com/ademuri/stream-history-tools/internal/history"
)

var topAlbumsNumber int
var topAlbumsCmd = &cobra.Command{
	Use:   "top-albums [from] [to (optional)]",
	Short: "Gets your top albums by play time",
	Long:  `Uses the specified date or date range. Date strings look like 'yyyy', 'yyyy-mm', 'yyyy-mm-dd', or relative like '30d'. With no dates, the whole archive is used.`,
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTopAlbums(viper.GetString("history"), args, topAlbumsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topAlbumsCmd)

	topAlbumsCmd.Flags().IntVarP(&topAlbumsNumber, "number", "n", 15, "number of results to return")
}

func printTopAlbums(historyDir string, args []string, numToReturn int) error {
	start, end, err := parseOptionalDateRange(args)
	if err != nil {
		return err
	}

	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	config := AnalyserConfig{numToReturn}
	out, err := (&TopAlbumsAnalyzer{}).SetConfig(config).GetResults(events, start, end)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type TopAlbumsAnalyzer struct {
	Config AnalyserConfig
}

func (t *TopAlbumsAnalyzer) SetConfig(config AnalyserConfig) *TopAlbumsAnalyzer {
	t.Config = config
	return t
}

func (t *TopAlbumsAnalyzer) Configure(params map[string]string) error {
	if val, ok := params["n"]; ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid value for 'n': %v", err)
		}
		t.Config.NumToReturn = n
	}
	return nil
}

func (t *TopAlbumsAnalyzer) GetName() string {
	return "Top albums"
}

func (t *TopAlbumsAnalyzer) GetResults(events []history.PlayEvent, start time.Time, end time.Time) (Analysis, error) {
	period := analysis.FilterRange(events, start, end)
	rows, err := analysis.SumPlayTime(period, analysis.ByArtist, analysis.ByAlbum)
	if err != nil {
		return Analysis{}, fmt.Errorf("printTopAlbums: %w", err)
	}

	result := Analysis{results: [][]string{{"Artist", "Album", "Minutes", "Hours", "Days"}}}
	var totalMinutes float64
	for _, row := range rows {
		totalMinutes += row.Minutes
	}
	for _, row := range analysis.TopN(rows, t.Config.NumToReturn) {
		result.results = append(result.results, append([]string{row.Key[0], row.Key[1]}, measureColumns(row)...))
	}

	result.summary = fmt.Sprintf("Found %d albums and %s minutes played %s\n",
		len(rows), formatMeasure(totalMinutes), displayPeriod(period, start, end))

	return result, nil
}
