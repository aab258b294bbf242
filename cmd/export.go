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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/store"
)

type ExportConfig struct {
	HistoryDir string
	DbPath     string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the enriched archive to a SQLite database",
	Long: `Loads and enriches the whole archive, then writes it to a local SQLite
database for ad-hoc SQL queries. Each run replaces the previous export.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := ExportConfig{
			HistoryDir: viper.GetString("history"),
			DbPath:     viper.GetString("database"),
		}
		err := exportDatabase(config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("database", "d", "./streams.db", "Path of the SQLite database to write")
	viper.BindPFlag("database", exportCmd.Flags().Lookup("database"))
}

func exportDatabase(config ExportConfig) error {
	events, err := loadArchive(config.HistoryDir)
	if err != nil {
		return err
	}

	db, err := store.New(config.DbPath)
	if err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}
	defer db.Close()

	if err := db.AddPlays(events); err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}

	count, err := db.CountPlays()
	if err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}
	artists, err := db.CountDistinctArtists()
	if err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}
	fmt.Printf("Wrote %d plays by %d artists to %s\n", count, artists, config.DbPath)

	first, last, err := db.Span()
	if err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}
	if !first.IsZero() {
		fmt.Printf("Archive spans %s to %s\n", first.Format("2006-01-02"), last.Format("2006-01-02"))
	}

	// Spot-check the written rows against the source aggregation.
	topArtists, err := db.TopArtistsByMinutes(1)
	if err != nil {
		return fmt.Errorf("exportDatabase: %w", err)
	}
	if len(topArtists) > 0 {
		fmt.Printf("Top artist: %s (%s minutes)\n", topArtists[0].Artist, formatMeasure(topArtists[0].Minutes))
	}

	return nil
}
