// Package history loads streaming-history JSON exports and turns them
// into analysis-ready play events.
package history

import "time"

// RawEvent is one record of the extended streaming-history export, as
// written by the streaming service. Metadata fields are null for
// non-music content such as podcasts, so they are pointers here.
type RawEvent struct {
	Ts              string  `json:"ts"`
	Platform        string  `json:"platform"`
	MsPlayed        *int64  `json:"ms_played"`
	ConnCountry     string  `json:"conn_country"`
	TrackName       *string `json:"master_metadata_track_name"`
	ArtistName      *string `json:"master_metadata_album_artist_name"`
	AlbumName       *string `json:"master_metadata_album_album_name"`
	SpotifyTrackURI *string `json:"spotify_track_uri"`
	EpisodeName     *string `json:"episode_name"`
	EpisodeShowName *string `json:"episode_show_name"`
	Shuffle         bool    `json:"shuffle"`
	Skipped         bool    `json:"skipped"`
}

// PlayEvent is one enriched play. Artist, Album, and Song are empty for
// records where the export carried no music metadata. When
// MsPlayedValid is false the export had a null ms_played and the
// duration fields are zero.
type PlayEvent struct {
	Timestamp time.Time
	Year      int
	Month     int
	YearMonth string

	Artist string
	Album  string
	Song   string

	Platform        string
	ConnCountry     string
	SpotifyTrackURI string
	EpisodeName     string
	EpisodeShowName string
	Shuffle         bool
	Skipped         bool

	MsPlayed      int64
	MsPlayedValid bool
	Minutes       float64
	Hours         float64
	Days          float64
}
