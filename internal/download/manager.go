package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lumine/ytmusic-downloader/internal/audio"
	"github.com/lumine/ytmusic-downloader/internal/config"
	"github.com/lumine/ytmusic-downloader/internal/converter"
	"github.com/lumine/ytmusic-downloader/internal/http"
	ioutils "github.com/lumine/ytmusic-downloader/internal/io"
	"github.com/lumine/ytmusic-downloader/internal/model"
	"github.com/lumine/ytmusic-downloader/internal/ytmusic"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates a batch of track downloads.
//
// A batch is a list of "Artist - Title" query lines grouped under one
// album folder. Each track runs through the full pipeline independently;
// a failed track is reported and skipped, never aborting the batch.
type Manager struct {
	settings     *config.Settings
	pipeline     *Pipeline
	transfer     *http.Client
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	album    *model.Album
	outcomes []Outcome

	totalTracks     int32
	completedTracks int32
	failedTracks    int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new download Manager from settings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	searchClient := http.NewClient(http.Config{Headers: ytmusic.DefaultHeaders()})
	convClient := http.NewClient(http.Config{Headers: converter.DefaultHeaders()})

	resolver := ytmusic.NewResolver(searchClient, settings.SearchURL)
	conv := converter.NewClient(convClient, converter.Config{
		BaseURL:      settings.ConvertBaseURL,
		TaskURL:      settings.ConvertTaskURL,
		PollInterval: time.Duration(settings.PollIntervalSeconds) * time.Second,
	})

	var playlistFormat audio.PlaylistFormat
	switch settings.PlaylistFormat {
	case "pls":
		playlistFormat = audio.FormatPLS
	default:
		playlistFormat = audio.FormatM3U
	}

	m := &Manager{
		settings: settings,
		transfer: convClient,
		tagger: audio.NewTagger(&audio.TagConfig{
			ModifyTags:   settings.ModifyTags,
			EmbedArtwork: settings.SaveCoverArtInTags,
		}),
		playlist:     audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}

	m.pipeline = NewPipeline(resolver, conv, convClient, PipelineConfig{
		TargetBitrate:  settings.TargetBitrate,
		MaxPollRetries: settings.PollMaxRetries,
		OnProgress:     onProgress,
	})

	return m
}

// Initialize parses query lines into the batch.
//
// Each non-empty line must read "Artist - Title"; several artists may be
// separated with ";". Lines that do not parse, or that carry no artist
// part, are reported and skipped.
// The batch is grouped under one album folder named from albumArtist and
// albumTitle.
func (m *Manager) Initialize(input, albumArtist, albumTitle string) error {
	album := model.NewAlbum(albumArtist, albumTitle, m.settings.ToPathConfig())
	trackCfg := m.settings.ToTrackConfig()

	number := 0
	for _, line := range strings.Split(input, "\n") {
		query, err := model.ParseQuery(line)
		if err != nil {
			if strings.TrimSpace(line) != "" {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping unparseable line: %q", line), Level: LevelWarning})
			}
			continue
		}
		if !query.HasArtists() {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping line without artist: %q", strings.TrimSpace(line)), Level: LevelWarning})
			continue
		}

		number++
		track := model.NewTrack(album, number, query.Artists, query.Title, trackCfg)
		album.Tracks = append(album.Tracks, track)
	}

	if len(album.Tracks) == 0 {
		return fmt.Errorf("no valid queries in input")
	}

	m.album = album
	m.totalTracks = int32(len(album.Tracks))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Batch: %s - %s (%d tracks)", album.Artist, album.Title, len(album.Tracks)), Level: LevelInfo})

	return nil
}

// Download runs the pipeline for every track in the batch.
//
// Tracks run with at most MaxConcurrentTracks in flight; the default of 1
// keeps the batch strictly sequential in submission order. Per-track
// failures are recorded as outcomes, not returned; the returned error only
// reflects setup problems or context cancellation.
func (m *Manager) Download(ctx context.Context) error {
	if m.album == nil {
		return fmt.Errorf("manager not initialized")
	}

	if err := ioutils.EnsureDir(m.album.Path); err != nil {
		return fmt.Errorf("creating album directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := m.settings.MaxConcurrentTracks
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, track := range m.album.Tracks {
		track := track
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.downloadTrack(ctx, track)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylist(ctx)
	}

	done := atomic.LoadInt32(&m.completedTracks)
	failed := atomic.LoadInt32(&m.failedTracks)
	if failed == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Batch complete: %d tracks", done), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Batch finished: %d downloaded, %d failed", done, failed), Level: LevelWarning})
	}

	return nil
}

// downloadTrack runs one track through the pipeline and post-processing.
func (m *Manager) downloadTrack(ctx context.Context, track *model.Track) {
	if _, err := os.Stat(track.Path); err == nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(track.Path)), Level: LevelVerbose})
		atomic.AddInt32(&m.completedTracks, 1)
		m.record(Outcome{Query: track.Query(), Path: track.Path})
		return
	}

	outcome := m.pipeline.Run(ctx, track.Query(), track.Path)
	m.record(outcome)

	if !outcome.OK() {
		atomic.AddInt32(&m.failedTracks, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Failed %s: %s (%v)", track.Title, outcome.Kind, outcome.Err), Level: LevelError})
		return
	}

	atomic.AddInt32(&m.completedTracks, 1)

	if m.settings.ModifyTags || m.settings.SaveCoverArtInTags {
		m.tagTrack(ctx, track, outcome.Reference)
	}
}

// tagTrack writes ID3 tags and cover art after a successful download.
func (m *Manager) tagTrack(ctx context.Context, track *model.Track, ref *ytmusic.Reference) {
	var artwork []byte

	if m.settings.SaveCoverArtInTags && ref != nil && ref.ArtworkURL != "" {
		data, err := m.transfer.Get(ctx, ref.ArtworkURL)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading artwork for %s: %v", track.Title, err), Level: LevelWarning})
		} else if m.settings.CoverArtInTagsResize {
			artwork, _ = m.imageService.ResizeImage(ctx, data, m.settings.CoverArtInTagsMaxSize, m.settings.CoverArtInTagsMaxSize)
		} else {
			artwork, _ = m.imageService.ConvertToJPEG(ctx, data)
		}
	}

	if err := m.tagger.SaveTags(track, track.Album, artwork); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", track.Title, err), Level: LevelWarning})
	}
}

// writePlaylist writes the playlist file over the batch's downloaded tracks.
func (m *Manager) writePlaylist(ctx context.Context) {
	var downloaded []*model.Track
	for _, track := range m.album.Tracks {
		if _, err := os.Stat(track.Path); err == nil {
			downloaded = append(downloaded, track)
		}
	}
	if len(downloaded) == 0 {
		return
	}

	playlistAlbum := *m.album
	playlistAlbum.Tracks = downloaded

	content := m.playlist.CreatePlaylist(&playlistAlbum)
	if err := ioutils.WriteFile(ctx, m.album.PlaylistPath, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist: %s", filepath.Base(m.album.PlaylistPath)), Level: LevelSuccess})
}

// record appends an outcome under the lock.
func (m *Manager) record(outcome Outcome) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()
}

// Outcomes returns a copy of the recorded per-track outcomes.
func (m *Manager) Outcomes() []Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Outcome, len(m.outcomes))
	copy(out, m.outcomes)
	return out
}

// GetProgress returns current batch progress.
func (m *Manager) GetProgress() (completed, failed, total int32) {
	return atomic.LoadInt32(&m.completedTracks),
		atomic.LoadInt32(&m.failedTracks),
		m.totalTracks
}

// TrackNames returns display names for all initialized tracks, in batch
// order. Used by the preview/dry-run mode and the TUI track list.
func (m *Manager) TrackNames() []string {
	if m.album == nil {
		return nil
	}
	names := make([]string, len(m.album.Tracks))
	for i, track := range m.album.Tracks {
		names[i] = fmt.Sprintf("%02d %s - %s", track.Number, track.Artist(), track.Title)
	}
	return names
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
