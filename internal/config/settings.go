package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lumine/ytmusic-downloader/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	DownloadsPath       string `json:"downloads_path"`
	MaxConcurrentTracks int    `json:"max_concurrent_tracks"`
	TargetBitrate       int    `json:"target_bitrate"`
	PollMaxRetries      int    `json:"poll_max_retries"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`

	// Service endpoints; empty selects the production defaults.
	SearchURL      string `json:"search_url"`
	ConvertBaseURL string `json:"convert_base_url"`
	ConvertTaskURL string `json:"convert_task_url"`

	// File naming
	FileNameFormat         string `json:"file_name_format"`
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`

	// Cover art settings
	SaveCoverArtInTags    bool `json:"save_cover_art_in_tags"`
	CoverArtInTagsResize  bool `json:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `json:"cover_art_in_tags_max_size"`

	// Playlist settings
	CreatePlaylist bool   `json:"create_playlist"`
	PlaylistFormat string `json:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DownloadsPath:       filepath.Join(homeDir, "Music", "YouTube Music", "{artist}", "{album}"),
		MaxConcurrentTracks: 1,
		TargetBitrate:       192,
		PollMaxRetries:      10,
		PollIntervalSeconds: 1,

		FileNameFormat:         "{tracknum} {artist} - {title}.mp3",
		PlaylistFileNameFormat: "{album}",

		SaveCoverArtInTags:    true,
		CoverArtInTagsResize:  true,
		CoverArtInTagsMaxSize: 1000,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags: true,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	var pf model.PlaylistFormat
	switch s.PlaylistFormat {
	case "pls":
		pf = model.PlaylistFormatPLS
	default:
		pf = model.PlaylistFormatM3U
	}

	return &model.PathConfig{
		DownloadsPath:          s.DownloadsPath,
		PlaylistFileNameFormat: s.PlaylistFileNameFormat,
		PlaylistFormat:         pf,
	}
}

// ToTrackConfig converts settings to TrackConfig.
func (s *Settings) ToTrackConfig() *model.TrackConfig {
	return &model.TrackConfig{
		FileNameFormat: s.FileNameFormat,
	}
}
