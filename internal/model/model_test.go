package model

import (
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantArtists []string
		wantTitle   string
		wantErr     bool
	}{
		{
			name:        "artist and title",
			line:        "Daft Punk - One More Time",
			wantArtists: []string{"Daft Punk"},
			wantTitle:   "One More Time",
		},
		{
			name:        "multiple artists",
			line:        "Nero; Skrillex - Promises",
			wantArtists: []string{"Nero", "Skrillex"},
			wantTitle:   "Promises",
		},
		{
			name:        "title containing separator",
			line:        "Moderat - A New Error - Live",
			wantArtists: []string{"Moderat"},
			wantTitle:   "A New Error - Live",
		},
		{
			name:      "bare title without artist",
			line:      "Intro",
			wantTitle: "Intro",
		},
		{
			name:    "blank line",
			line:    "   ",
			wantErr: true,
		},
		{
			name:    "separator with empty title",
			line:    "Artist - ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuery(tt.line)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if q.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", q.Title, tt.wantTitle)
			}
			if len(q.Artists) != len(tt.wantArtists) {
				t.Fatalf("Artists = %v, want %v", q.Artists, tt.wantArtists)
			}
			for i := range tt.wantArtists {
				if q.Artists[i] != tt.wantArtists[i] {
					t.Errorf("Artists[%d] = %q, want %q", i, q.Artists[i], tt.wantArtists[i])
				}
			}
		})
	}
}

func TestQuery_Text(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "single artist",
			query: Query{Artists: []string{"Daft Punk"}, Title: "One More Time"},
			want:  "Daft Punk One More Time",
		},
		{
			name:  "multiple artists joined in order",
			query: Query{Artists: []string{"Nero", "Skrillex"}, Title: "Promises"},
			want:  "Nero Skrillex Promises",
		},
		{
			name:  "title only",
			query: Query{Title: "Intro"},
			want:  "Intro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlbum_PathComputation(t *testing.T) {
	cfg := &PathConfig{
		DownloadsPath:          "/music/{artist}/{album}",
		PlaylistFileNameFormat: "{album}",
		PlaylistFormat:         PlaylistFormatM3U,
	}

	album := NewAlbum("Test Artist", "Test Album", cfg)

	if album.Path != "/music/Test Artist/Test Album" {
		t.Errorf("Album.Path = %q, want %q", album.Path, "/music/Test Artist/Test Album")
	}

	if album.PlaylistPath != "/music/Test Artist/Test Album/Test Album.m3u" {
		t.Errorf("Album.PlaylistPath = %q", album.PlaylistPath)
	}
}

func TestTrack_PathComputation(t *testing.T) {
	albumCfg := &PathConfig{
		DownloadsPath:          "/music/{artist}/{album}",
		PlaylistFileNameFormat: "{album}",
		PlaylistFormat:         PlaylistFormatM3U,
	}
	trackCfg := &TrackConfig{
		FileNameFormat: "{tracknum} {title}.mp3",
	}

	album := NewAlbum("Artist", "Album", albumCfg)
	track := NewTrack(album, 1, []string{"Track Artist"}, "Track Title", trackCfg)

	expectedPath := "/music/Artist/Album/01 Track Title.mp3"
	if track.Path != expectedPath {
		t.Errorf("Track.Path = %q, want %q", track.Path, expectedPath)
	}
}

func TestTrack_Artist(t *testing.T) {
	cfg := &PathConfig{DownloadsPath: "/music", PlaylistFileNameFormat: "{album}"}
	trackCfg := &TrackConfig{FileNameFormat: "{title}.mp3"}
	album := NewAlbum("Album Artist", "Album", cfg)

	withArtists := NewTrack(album, 1, []string{"A", "B"}, "One", trackCfg)
	if got := withArtists.Artist(); got != "A" {
		t.Errorf("Artist() = %q, want %q", got, "A")
	}

	withoutArtists := NewTrack(album, 2, nil, "Two", trackCfg)
	if got := withoutArtists.Artist(); got != "Album Artist" {
		t.Errorf("Artist() = %q, want %q", got, "Album Artist")
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{PlaylistFormatM3U, ".m3u"},
		{PlaylistFormatPLS, ".pls"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}
