package ytmusic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumine/ytmusic-downloader/internal/http"
	"github.com/lumine/ytmusic-downloader/internal/model"
)

// shelfResponse builds an InnerTube-shaped search response holding the given
// raw list items in one music shelf.
func shelfResponse(items ...string) string {
	shelf := "[]"
	if len(items) > 0 {
		shelf = "["
		for i, item := range items {
			if i > 0 {
				shelf += ","
			}
			shelf += fmt.Sprintf(`{"musicResponsiveListItemRenderer":%s}`, item)
		}
		shelf += "]"
	}

	return fmt.Sprintf(`{
		"contents": {"tabbedSearchResultsRenderer": {"tabs": [
			{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
				{"musicShelfRenderer": {"contents": %s}}
			]}}}}
		]}}
	}`, shelf)
}

// songItem builds one list item with a video ID, title and album run.
func songItem(videoID, title, album string) string {
	return fmt.Sprintf(`{
		"playlistItemData": {"videoId": %q},
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": %q}]}}},
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Some Artist", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCxyz"}}},
				{"text": " • "},
				{"text": %q, "navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_abc"}}}
			]}}}
		],
		"thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [
			{"url": "https://img.test/small.jpg", "width": 60, "height": 60},
			{"url": "https://img.test/large.jpg", "width": 544, "height": 544}
		]}}}
	}`, videoID, title, album)
}

func searchServer(t *testing.T, response string, gotBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if gotBody != nil {
			json.NewDecoder(r.Body).Decode(gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, response)
	}))
}

func TestResolver_Resolve_FirstHit(t *testing.T) {
	var gotBody map[string]any
	server := searchServer(t, shelfResponse(
		songItem("abc123", "Song Y", "Album Z"),
		songItem("zzz999", "Other Song", "Other Album"),
	), &gotBody)
	defer server.Close()

	resolver := NewResolver(http.NewClient(http.Config{}), server.URL)
	query := model.Query{Artists: []string{"Artist X"}, Title: "Song Y"}

	ref, err := resolver.Resolve(context.Background(), query)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if ref.VideoID != "abc123" {
		t.Errorf("VideoID = %q, want %q (first hit, not a later one)", ref.VideoID, "abc123")
	}
	if ref.URL != "https://music.youtube.com/watch?v=abc123" {
		t.Errorf("URL = %q", ref.URL)
	}
	if ref.Title != "Song Y" {
		t.Errorf("Title = %q, want %q", ref.Title, "Song Y")
	}
	if ref.Album != "Album Z" {
		t.Errorf("Album = %q, want %q", ref.Album, "Album Z")
	}
	if ref.ArtworkURL != "https://img.test/large.jpg" {
		t.Errorf("ArtworkURL = %q, want the largest thumbnail", ref.ArtworkURL)
	}

	if gotBody["query"] != "Artist X Song Y" {
		t.Errorf("search query = %q, want %q", gotBody["query"], "Artist X Song Y")
	}
	if gotBody["params"] != songsFilterParams {
		t.Errorf("search params = %q, want songs filter", gotBody["params"])
	}
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty shelf", shelfResponse()},
		{"no contents at all", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := searchServer(t, tt.response, nil)
			defer server.Close()

			resolver := NewResolver(http.NewClient(http.Config{}), server.URL)
			_, err := resolver.Resolve(context.Background(), model.Query{Title: "anything"})
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestResolver_Resolve_IncompleteResult(t *testing.T) {
	// Top hit has columns but no playlistItemData, so no video ID.
	item := `{
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Song"}]}}}
		]
	}`
	server := searchServer(t, shelfResponse(item), nil)
	defer server.Close()

	resolver := NewResolver(http.NewClient(http.Config{}), server.URL)
	_, err := resolver.Resolve(context.Background(), model.Query{Title: "anything"})
	if !errors.Is(err, ErrIncompleteResult) {
		t.Errorf("Resolve error = %v, want ErrIncompleteResult", err)
	}
}

func TestResolver_Resolve_ServiceError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "internal error", nethttp.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewResolver(http.NewClient(http.Config{}), server.URL)
	_, err := resolver.Resolve(context.Background(), model.Query{Title: "anything"})
	if err == nil {
		t.Fatal("expected error from failing search service")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrIncompleteResult) {
		t.Errorf("service failure must not map to a result-shape error, got %v", err)
	}
}

func TestWatchURL(t *testing.T) {
	if got := WatchURL("abc123"); got != "https://music.youtube.com/watch?v=abc123" {
		t.Errorf("WatchURL = %q", got)
	}
}
