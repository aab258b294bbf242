package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/analysis"
	"github.com/ademuri/stream-history-tools/internal/chart"
)

var trendsNumber int
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Charts play time per year for your all-time top artists",
	Long: `Picks the top artists across the whole archive and writes a line chart
of their hours per year to the charts directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := writeTrendsChart(viper.GetString("history"), viper.GetString("charts"), trendsNumber)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)

	trendsCmd.Flags().IntVarP(&trendsNumber, "number", "n", 15, "number of artists to chart")
}

func writeTrendsChart(historyDir string, chartsDir string, numToChart int) error {
	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	series, err := analysis.TopArtistTrends(events, numToChart)
	if err != nil {
		return fmt.Errorf("writeTrendsChart: %w", err)
	}
	if len(series.Artists) == 0 {
		return fmt.Errorf("no artists to chart")
	}

	c := chart.LineChart{
		Title:    fmt.Sprintf("Top %d artists per year", len(series.Artists)),
		Subtitle: "Hours played, top artists chosen across the whole archive",
		XLabel:   "Year",
		YLabel:   "Hours",
		XValues:  yearLabels(series.Years),
	}
	for i, artist := range series.Artists {
		c.Series = append(c.Series, chart.Series{Name: artist, Values: series.Hours[i]})
	}

	return writeChart(chartsDir, "top-artists-per-year.html", c)
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
	}
	return labels
}
