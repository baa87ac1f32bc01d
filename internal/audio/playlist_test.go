package audio

import (
	"strings"
	"testing"

	"github.com/lumine/ytmusic-downloader/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(album)

	if strings.HasPrefix(content, "#EXTM3U") {
		t.Error("plain M3U should not carry the extended header")
	}
	if !strings.Contains(content, "01 Test Artist - track1.mp3") {
		t.Error("M3U should contain track filename")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(FormatM3U, true)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - track1") {
		t.Error("Extended M3U should contain #EXTINF with artist and title")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "Title2=track2") {
		t.Error("PLS should contain each track title")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func createTestAlbum() *model.Album {
	albumCfg := &model.PathConfig{
		DownloadsPath:          "/music/{artist}/{album}",
		PlaylistFileNameFormat: "{album}",
	}
	trackCfg := &model.TrackConfig{
		FileNameFormat: "{tracknum} {artist} - {title}.mp3",
	}

	album := model.NewAlbum("Test Artist", "Test Album", albumCfg)

	track1 := model.NewTrack(album, 1, nil, "track1", trackCfg)
	track2 := model.NewTrack(album, 2, nil, "track2", trackCfg)

	album.Tracks = []*model.Track{track1, track2}

	return album
}
