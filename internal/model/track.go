package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Track represents a single requested track within an album batch.
//
// Track carries the request metadata for one song:
//   - Track number (batch position, 1-indexed) and title for ID3 tagging
//   - Artist list for the search query and tagging
//   - Computed local destination path
//
// The file path is automatically computed when creating a track via NewTrack,
// using the album's path and the TrackConfig file name format.
//
// Example:
//
//	cfg := &TrackConfig{FileNameFormat: "{tracknum} {title}.mp3"}
//	track := NewTrack(album, 1, []string{"Daft Punk"}, "One More Time", cfg)
//	// track.Path = "/music/Daft Punk/Discovery/01 One More Time.mp3"
type Track struct {
	// Album is a reference to the parent album batch.
	Album *Album

	// Number is the track number within the batch (1-indexed).
	Number int

	// Artists is the list of artist names for this track.
	Artists []string

	// Title is the track title.
	Title string

	// Path is the computed local file path where the track will be saved.
	// Includes the full path and filename with extension.
	Path string
}

// TrackConfig holds track path formatting settings.
//
// The FileNameFormat supports placeholders that are replaced with actual
// values:
//   - {tracknum} - Track number (2 digits, zero-padded)
//   - {title} - Track title
//   - {artist} - Track artist (first artist, or album artist when none)
//   - {album} - Album title
//
// Example:
//
//	cfg := &TrackConfig{
//	    FileNameFormat: "{tracknum} {artist} - {title}.mp3",
//	}
//	// Results in filenames like "01 Daft Punk - One More Time.mp3"
type TrackConfig struct {
	// FileNameFormat is the template for track filenames.
	// Must include the file extension (typically ".mp3").
	FileNameFormat string
}

// NewTrack creates a new Track with computed path.
//
// Parameters:
//   - album: The parent album batch (required for path computation)
//   - number: Track number (1-indexed, used for filename and ID3 tag)
//   - artists: Artist names for this track (may be empty)
//   - title: Track title
//   - cfg: Configuration for file naming
//
// The file path is computed using the album's path and the configured
// filename format. Invalid filename characters are automatically replaced
// with underscores.
func NewTrack(album *Album, number int, artists []string, title string, cfg *TrackConfig) *Track {
	track := &Track{
		Album:   album,
		Number:  number,
		Artists: artists,
		Title:   title,
	}

	track.Path = track.parseFilePath(cfg)

	return track
}

// Query returns the search query derived from this track's metadata.
func (t *Track) Query() Query {
	return Query{Artists: t.Artists, Title: t.Title}
}

// Artist returns the display artist: the first listed artist, falling back
// to the album artist when the track carries none.
func (t *Track) Artist() string {
	if len(t.Artists) > 0 {
		return t.Artists[0]
	}
	return t.Album.Artist
}

// parseFilePath computes the full file path for this track.
func (t *Track) parseFilePath(cfg *TrackConfig) string {
	fileName := t.parseFileName(cfg)
	filePath := filepath.Join(t.Album.Path, fileName)

	// Limit total path length for Windows compatibility (MAX_PATH = 260)
	if len(filePath) >= 260 {
		ext := filepath.Ext(filePath)
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(t.Album.Path, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// parseFileName computes the filename from the config template.
func (t *Track) parseFileName(cfg *TrackConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{album}", t.Album.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", t.Artist())
	fileName = strings.ReplaceAll(fileName, "{title}", t.Title)
	fileName = strings.ReplaceAll(fileName, "{tracknum}", fmt.Sprintf("%02d", t.Number))
	return sanitizeFileName(fileName)
}
