package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/stream-history-tools/internal/analysis"
)

var reportNumber int
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints a YAML listening report for the whole archive",
	Long:  `Summarizes the archive as YAML: totals, top artists, albums, and songs, and per-year activity.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(viper.GetString("history"), reportNumber)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportNumber, "number", "n", 15, "number of entries per ranking")
}

func runReport(historyDir string, numToReturn int) error {
	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	report, err := analysis.BuildReport(events, numToReturn)
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}

	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
