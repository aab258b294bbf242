package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/stream-history-tools/internal/history"
)

// AddPlays replaces the Play table with the given events in a single
// transaction. Each export run rewrites the table wholesale, matching
// how the analysis pipeline recomputes from JSON on every run.
func (s *Store) AddPlays(events []history.PlayEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Play"); err != nil {
		return fmt.Errorf("clearing plays: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO Play (
			ts, year, month, year_month,
			artist, album, song,
			platform, conn_country, spotify_track_uri,
			episode_name, episode_show_name,
			shuffle, skipped,
			ms_played, minutes, hours, days
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, event := range events {
		msPlayed := sql.NullInt64{Int64: event.MsPlayed, Valid: event.MsPlayedValid}
		_, err := stmt.Exec(
			event.Timestamp.Format(time.RFC3339), event.Year, event.Month, event.YearMonth,
			nullString(event.Artist), nullString(event.Album), nullString(event.Song),
			event.Platform, event.ConnCountry, nullString(event.SpotifyTrackURI),
			nullString(event.EpisodeName), nullString(event.EpisodeShowName),
			event.Shuffle, event.Skipped,
			msPlayed, event.Minutes, event.Hours, event.Days,
		)
		if err != nil {
			return fmt.Errorf("inserting play at %s: %w", event.Timestamp.Format(time.RFC3339), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// nullString stores empty metadata as NULL, like the export itself.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
