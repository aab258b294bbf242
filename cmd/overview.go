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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/analysis"
)

var overviewArtists int
var overviewAlbums int
var overviewSongs int

var overviewCmd = &cobra.Command{
	Use:   "overview [from] [to (optional)]",
	Short: "Prints totals and top artists, albums, and songs",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printOverview(os.Stdout, viper.GetString("history"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)

	overviewCmd.Flags().IntVar(&overviewArtists, "artists", 10, "number of artists to show")
	overviewCmd.Flags().IntVar(&overviewAlbums, "albums", 10, "number of albums to show")
	overviewCmd.Flags().IntVar(&overviewSongs, "songs", 10, "number of songs to show")
}

func printOverview(out io.Writer, historyDir string, args []string) error {
	start, end, err := parseOptionalDateRange(args)
	if err != nil {
		return err
	}

	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}
	period := analysis.FilterRange(events, start, end)

	totals := analysis.SumTotals(period)
	fmt.Fprintf(out, "# Overview %s\n\n", displayPeriod(period, start, end))
	fmt.Fprintf(out, "%d plays, %s hours (%s days)\n\n",
		totals.Events, formatMeasure(totals.Hours), formatMeasure(totals.Days))

	sections := []struct {
		title string
		limit int
		keys  []analysis.GroupKey
	}{
		{"artists", overviewArtists, []analysis.GroupKey{analysis.ByArtist}},
		{"albums", overviewAlbums, []analysis.GroupKey{analysis.ByArtist, analysis.ByAlbum}},
		{"songs", overviewSongs, []analysis.GroupKey{analysis.ByArtist, analysis.BySong}},
	}
	for _, section := range sections {
		rows, err := analysis.SumPlayTime(period, section.keys...)
		if err != nil {
			return fmt.Errorf("printOverview: %w", err)
		}

		fmt.Fprintf(out, "## Top %d %s\n\n", section.limit, section.title)
		for _, row := range analysis.TopN(rows, section.limit) {
			name := row.Key[0]
			for _, part := range row.Key[1:] {
				name += " - " + part
			}
			fmt.Fprintf(out, "%s: %s hours\n", name, formatMeasure(row.Hours))
		}
		fmt.Fprintln(out)
	}

	return nil
}
