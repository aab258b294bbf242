package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/analysis"
	"github.com/ademuri/stream-history-tools/internal/history"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Finds months inside the archive with no plays at all",
	Long: `A month with zero plays between the first and last play usually means a
lost or incomplete export file, not silence.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := checkGaps(viper.GetString("history"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(gapsCmd)
}

func checkGaps(historyDir string) error {
	events, err := loadArchive(historyDir)
	if err != nil {
		return err
	}

	out, err := (&GapsAnalyzer{}).GetResults(events, time.Time{}, time.Time{})
	if err == ErrSkipReport {
		fmt.Println("No missing months detected.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(out.BodyOverride)
	return nil
}

type GapsAnalyzer struct{}

func (g *GapsAnalyzer) GetName() string {
	return "Archive gaps"
}

func (g *GapsAnalyzer) GetResults(events []history.PlayEvent, start time.Time, end time.Time) (Analysis, error) {
	missing := analysis.MissingMonths(analysis.FilterRange(events, start, end))
	if len(missing) == 0 {
		return Analysis{}, ErrSkipReport
	}

	out := new(strings.Builder)
	fmt.Fprintf(out, "Found %d months with no plays:\n", len(missing))
	for _, month := range missing {
		fmt.Fprintf(out, "  %s\n", month)
	}
	return Analysis{BodyOverride: out.String()}, nil
}
