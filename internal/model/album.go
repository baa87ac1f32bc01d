package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Album represents one batch of requested tracks.
//
// Album carries the information needed to organize downloaded files:
//   - Artist and Title for file naming and playlist generation
//   - Tracks in their requested order (the batch iteration order)
//   - Computed local paths for the album folder and playlist file
//
// Paths are automatically computed when creating an album via NewAlbum,
// using placeholders like {artist} and {album}.
//
// Example:
//
//	cfg := &PathConfig{
//	    DownloadsPath:          "/music/{artist}/{album}",
//	    PlaylistFileNameFormat: "{album}",
//	    PlaylistFormat:         PlaylistFormatM3U,
//	}
//	album := NewAlbum("Daft Punk", "Discovery", cfg)
//	// album.Path = "/music/Daft Punk/Discovery"
type Album struct {
	// Artist is the album artist name used for path templating.
	Artist string

	// Title is the album title.
	Title string

	// Tracks contains the requested tracks, in batch order.
	Tracks []*Track

	// Path is the computed local directory path where files will be saved.
	Path string

	// PlaylistPath is the computed local file path for the playlist file.
	PlaylistPath string
}

// NewAlbum creates a new Album with computed paths based on settings.
//
// The pathConfig determines how file paths are constructed using placeholders:
//   - {artist} - Album artist name
//   - {album} - Album title
//
// Invalid filename characters are automatically replaced with underscores.
// Paths are truncated if they exceed Windows path length limits (248 for
// folders, 260 for files).
func NewAlbum(artist, title string, cfg *PathConfig) *Album {
	album := &Album{
		Artist: artist,
		Title:  title,
	}

	album.Path = album.parseFolderPath(cfg)
	album.PlaylistPath = album.parsePlaylistPath(cfg)

	return album
}

// PathConfig holds path formatting settings for albums and tracks.
//
// Path fields support placeholders that are replaced with actual values:
//   - {artist} - Album artist name
//   - {album} - Album title
type PathConfig struct {
	// DownloadsPath is the base path template for saving tracks.
	// Example: "/music/{artist}/{album}"
	DownloadsPath string

	// PlaylistFileNameFormat is the filename template for playlists
	// (without extension). Example: "{album}"
	PlaylistFileNameFormat string

	// PlaylistFormat determines the playlist file type and extension.
	PlaylistFormat PlaylistFormat
}

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatM3U creates .m3u playlist files (most widely supported).
	PlaylistFormatM3U PlaylistFormat = iota

	// PlaylistFormatPLS creates .pls playlist files (used by Winamp).
	PlaylistFormatPLS
)

// Extension returns the file extension for the playlist format, including
// the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatPLS:
		return ".pls"
	default:
		return ".m3u"
	}
}

// parseFolderPath computes the album folder path from the config template.
func (a *Album) parseFolderPath(cfg *PathConfig) string {
	path := cfg.DownloadsPath
	path = strings.ReplaceAll(path, "{artist}", sanitizeFileName(a.Artist))
	path = strings.ReplaceAll(path, "{album}", sanitizeFileName(a.Title))

	// Limit path length for cross-platform compatibility (Windows MAX_PATH)
	if len(path) >= 248 {
		path = path[:247]
	}

	return path
}

// parsePlaylistPath computes the full playlist file path.
func (a *Album) parsePlaylistPath(cfg *PathConfig) string {
	fileName := cfg.PlaylistFileNameFormat
	fileName = strings.ReplaceAll(fileName, "{album}", a.Title)
	fileName = strings.ReplaceAll(fileName, "{artist}", a.Artist)
	fileName = sanitizeFileName(fileName)

	ext := cfg.PlaylistFormat.Extension()
	filePath := filepath.Join(a.Path, fileName+ext)

	// Limit total path length for Windows compatibility
	if len(filePath) >= 260 {
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(a.Path, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
