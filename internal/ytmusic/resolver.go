package ytmusic

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumine/ytmusic-downloader/internal/http"
	"github.com/lumine/ytmusic-downloader/internal/model"
	"github.com/lumine/ytmusic-downloader/internal/ytmusic/dto"
)

const (
	// DefaultSearchURL is the InnerTube search endpoint of YouTube Music.
	DefaultSearchURL = "https://music.youtube.com/youtubei/v1/search"

	watchURLFormat = "https://music.youtube.com/watch?v=%s"

	// InnerTube client identity for the YouTube Music web app.
	clientName    = "WEB_REMIX"
	clientVersion = "1.20240101.01.00"

	// songsFilterParams scopes the search to song results.
	songsFilterParams = "EgWKAQIIAWoMEA4QChADEAQQCRAF"
)

// ErrNotFound is returned when the search service has no results for a query.
var ErrNotFound = errors.New("song not found")

// ErrIncompleteResult is returned when the top search hit carries no video ID.
var ErrIncompleteResult = errors.New("video id missing from search result")

// DefaultHeaders returns the fixed header set for InnerTube search calls.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0",
		"Accept":       "application/json, text/plain, */*",
		"Content-Type": "application/json",
		"Origin":       "https://music.youtube.com",
	}
}

// Reference is the canonical locator for one resolved audio item.
//
// A Reference always carries exactly one canonical URL, derived
// deterministically from the video ID via WatchURL. Title, Album and
// ArtworkURL are display metadata taken verbatim from the search hit.
type Reference struct {
	// VideoID is the stable identifier of the resolved item.
	VideoID string

	// URL is the canonical watch URL for the item.
	URL string

	// Title is the display title from the search hit.
	Title string

	// Album is the display album name from the search hit, when present.
	Album string

	// ArtworkURL points at the largest thumbnail of the hit, when present.
	ArtworkURL string
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return fmt.Sprintf(watchURLFormat, videoID)
}

// Resolver turns free-text queries into References using the YouTube Music
// search API.
//
// Example usage:
//
//	resolver := NewResolver(http.NewClient(http.Config{Headers: DefaultHeaders()}), "")
//	ref, err := resolver.Resolve(ctx, query)
type Resolver struct {
	client    *http.Client
	searchURL string
}

// NewResolver creates a Resolver that searches through the given endpoint.
// An empty searchURL selects DefaultSearchURL.
func NewResolver(client *http.Client, searchURL string) *Resolver {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	return &Resolver{client: client, searchURL: searchURL}
}

// searchRequest is the InnerTube search request body.
type searchRequest struct {
	Context searchContext `json:"context"`
	Query   string        `json:"query"`
	Params  string        `json:"params"`
}

type searchContext struct {
	Client searchClient `json:"client"`
}

type searchClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	HL            string `json:"hl"`
}

// Resolve issues one song-scoped search call for the query and returns the
// first hit verbatim as a Reference.
//
// Returns ErrNotFound when the service has no song results for the query,
// and ErrIncompleteResult when the top hit lacks a video ID. Transport and
// decoding failures are returned wrapped; classification of those into
// outcome categories happens at the pipeline boundary.
func (r *Resolver) Resolve(ctx context.Context, query model.Query) (*Reference, error) {
	body := searchRequest{
		Context: searchContext{
			Client: searchClient{
				ClientName:    clientName,
				ClientVersion: clientVersion,
				HL:            "en",
			},
		},
		Query:  query.Text(),
		Params: songsFilterParams,
	}

	var resp dto.SearchResponse
	if err := r.client.PostJSON(ctx, r.searchURL, body, &resp); err != nil {
		return nil, fmt.Errorf("search call failed: %w", err)
	}

	hit, ok := resp.FirstSong()
	if !ok {
		return nil, ErrNotFound
	}
	if hit.VideoID == "" {
		return nil, ErrIncompleteResult
	}

	return &Reference{
		VideoID:    hit.VideoID,
		URL:        WatchURL(hit.VideoID),
		Title:      hit.Title,
		Album:      hit.Album,
		ArtworkURL: hit.ArtworkURL,
	}, nil
}
