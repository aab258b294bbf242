package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CountPlays returns the number of rows in the Play table.
func (s *Store) CountPlays() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Play").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting plays: %w", err)
	}
	return count, nil
}

// Span returns the earliest and latest play timestamps. Zero times
// mean the table is empty. RFC3339 strings sort chronologically, so
// MIN/MAX on the text column is safe.
func (s *Store) Span() (first, last time.Time, err error) {
	var minStr, maxStr sql.NullString
	if err = s.db.QueryRow("SELECT MIN(ts), MAX(ts) FROM Play").Scan(&minStr, &maxStr); err != nil {
		err = fmt.Errorf("scanning span: %w", err)
		return
	}
	if !minStr.Valid || !maxStr.Valid {
		return
	}

	first, err = parseDate(minStr.String)
	if err != nil {
		return
	}
	last, err = parseDate(maxStr.String)
	return
}

func parseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	return t, nil
}

// CountDistinctArtists counts distinct non-null artist values.
func (s *Store) CountDistinctArtists() (int, error) {
	var count int
	query := "SELECT COUNT(DISTINCT artist) FROM Play WHERE artist IS NOT NULL"
	if err := s.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting artists: %w", err)
	}
	return count, nil
}

type ArtistPlayTime struct {
	Artist  string
	Minutes float64
}

// TopArtistsByMinutes ranks artists by summed minutes played, used to
// spot-check an export against the in-memory aggregation.
func (s *Store) TopArtistsByMinutes(limit int) ([]ArtistPlayTime, error) {
	query := `
	SELECT artist, SUM(minutes) AS minutes
	FROM Play
	WHERE artist IS NOT NULL
	GROUP BY artist
	ORDER BY minutes DESC
	LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top artists: %w", err)
	}
	defer rows.Close()

	var artists []ArtistPlayTime
	for rows.Next() {
		var a ArtistPlayTime
		if err := rows.Scan(&a.Artist, &a.Minutes); err != nil {
			return nil, fmt.Errorf("scanning artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
