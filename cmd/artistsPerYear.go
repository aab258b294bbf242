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

var artistsPerYearCmd = &cobra.Command{
	Use:   "artists-per-year",
	Short: "Counts distinct artists heard in each year",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printArtistsPerYear(viper.GetString("history"), viper.GetString("charts"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistsPerYearCmd)
}

func printArtistsPerYear(historyDir string, chartsDir string) error {
	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	counts := analysis.DistinctArtistsPerYear(events)
	result := Analysis{results: [][]string{{"Year", "Artists"}}}
	for _, count := range counts {
		result.results = append(result.results,
			[]string{strconv.Itoa(count.Year), strconv.Itoa(count.Artists)})
	}
	result.summary = fmt.Sprintf("Counted artists across %d years\n", len(counts))
	fmt.Println(result)

	if len(counts) == 0 {
		return nil
	}
	c := chart.LineChart{
		Title:  "Distinct artists per year",
		XLabel: "Year",
		YLabel: "Artists",
	}
	values := make([]float64, len(counts))
	for i, count := range counts {
		c.XValues = append(c.XValues, strconv.Itoa(count.Year))
		values[i] = float64(count.Artists)
	}
	c.Series = []chart.Series{{Name: "Distinct artists", Values: values}}

	return writeChart(chartsDir, "artists-per-year.html", c)
}
