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

var newArtistsNumber int
var newArtistsCmd = &cobra.Command{
	Use:   "new-artists [from] [to (optional)]",
	Short: "Gets artists you first played in the given period",
	Long: `An artist is new when its first play in the whole archive falls inside
the given date range. Ranked by play time within the range.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printNewArtists(viper.GetString("history"), args, newArtistsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newArtistsCmd)

	newArtistsCmd.Flags().IntVarP(&newArtistsNumber, "number", "n", 0, "number of results to return, 0 for all")
}

func printNewArtists(historyDir string, args []string, numToReturn int) error {
	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return err
	}

	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	config := AnalyserConfig{numToReturn}
	out, err := (&NewArtistsAnalyzer{}).SetConfig(config).GetResults(events, start, end)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type NewArtistsAnalyzer struct {
	Config AnalyserConfig
}

func (n *NewArtistsAnalyzer) SetConfig(config AnalyserConfig) *NewArtistsAnalyzer {
	n.Config = config
	return n
}

func (n *NewArtistsAnalyzer) Configure(params map[string]string) error {
	if val, ok := params["n"]; ok {
		num, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid value for 'n': %v", err)
		}
		n.Config.NumToReturn = num
	}
	return nil
}

func (n *NewArtistsAnalyzer) GetName() string {
	return "New artists"
}

func (n *NewArtistsAnalyzer) GetResults(events []history.PlayEvent, start time.Time, end time.Time) (Analysis, error) {
	newArtists := analysis.NewArtists(events, start, end)
	period := analysis.FilterArtists(analysis.FilterRange(events, start, end), newArtists)
	rows, err := analysis.SumPlayTime(period, analysis.ByArtist)
	if err != nil {
		return Analysis{}, fmt.Errorf("printNewArtists: %w", err)
	}

	result := Analysis{results: [][]string{{"Artist", "Minutes", "Hours", "Days"}}}
	for _, row := range analysis.TopN(rows, n.Config.NumToReturn) {
		result.results = append(result.results, append([]string{row.Key[0]}, measureColumns(row)...))
	}

	result.summary = fmt.Sprintf("Found %d new artists %s\n",
		len(newArtists), displayPeriod(period, start, end))

	return result, nil
}
