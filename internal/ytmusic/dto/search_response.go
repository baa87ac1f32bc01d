package dto

import "strings"

// Album browse IDs start with this prefix; artist browse IDs start with "UC".
const albumBrowsePrefix = "MPRE"

// SearchResponse mirrors the subset of the InnerTube search response that
// the resolver needs. The real response nests song hits inside a tab ->
// section list -> music shelf -> list item chain; every level is optional
// here because the service omits empty renderers rather than sending empty
// arrays.
type SearchResponse struct {
	Contents *SearchContents `json:"contents"`
}

// SearchContents wraps the tabbed search results.
type SearchContents struct {
	TabbedSearchResultsRenderer *TabbedSearchResults `json:"tabbedSearchResultsRenderer"`
}

// TabbedSearchResults holds the result tabs; filtered searches have one.
type TabbedSearchResults struct {
	Tabs []Tab `json:"tabs"`
}

// Tab is one result tab.
type Tab struct {
	TabRenderer *TabRenderer `json:"tabRenderer"`
}

// TabRenderer holds a tab's content.
type TabRenderer struct {
	Content *TabContent `json:"content"`
}

// TabContent wraps the section list of a tab.
type TabContent struct {
	SectionListRenderer *SectionList `json:"sectionListRenderer"`
}

// SectionList holds the result sections of a tab.
type SectionList struct {
	Contents []Section `json:"contents"`
}

// Section is one result section; song results live in a music shelf.
type Section struct {
	MusicShelfRenderer *MusicShelf `json:"musicShelfRenderer"`
}

// MusicShelf holds the ordered list of song hits.
type MusicShelf struct {
	Contents []ShelfItem `json:"contents"`
}

// ShelfItem is one entry of a music shelf.
type ShelfItem struct {
	MusicResponsiveListItemRenderer *ListItem `json:"musicResponsiveListItemRenderer"`
}

// ListItem is one rendered song hit.
type ListItem struct {
	PlaylistItemData *PlaylistItemData  `json:"playlistItemData"`
	FlexColumns      []FlexColumn       `json:"flexColumns"`
	Thumbnail        *ThumbnailRenderer `json:"thumbnail"`
}

// PlaylistItemData carries the hit's video ID.
type PlaylistItemData struct {
	VideoID string `json:"videoId"`
}

// FlexColumn is one display column of a hit. Column 0 holds the title;
// column 1 holds artist/album/duration runs.
type FlexColumn struct {
	MusicResponsiveListItemFlexColumnRenderer *FlexColumnRenderer `json:"musicResponsiveListItemFlexColumnRenderer"`
}

// FlexColumnRenderer holds a column's text runs.
type FlexColumnRenderer struct {
	Text *RunContainer `json:"text"`
}

// RunContainer wraps a list of text runs.
type RunContainer struct {
	Runs []Run `json:"runs"`
}

// Run is one text fragment, optionally linked to a browse target.
type Run struct {
	Text               string              `json:"text"`
	NavigationEndpoint *NavigationEndpoint `json:"navigationEndpoint"`
}

// NavigationEndpoint carries a run's browse target, when it has one.
type NavigationEndpoint struct {
	BrowseEndpoint *BrowseEndpoint `json:"browseEndpoint"`
}

// BrowseEndpoint identifies the linked entity.
type BrowseEndpoint struct {
	BrowseID string `json:"browseId"`
}

// ThumbnailRenderer wraps a hit's thumbnail set.
type ThumbnailRenderer struct {
	MusicThumbnailRenderer *MusicThumbnail `json:"musicThumbnailRenderer"`
}

// MusicThumbnail holds the thumbnail variants.
type MusicThumbnail struct {
	Thumbnail *ThumbnailSet `json:"thumbnail"`
}

// ThumbnailSet lists thumbnail variants, smallest first.
type ThumbnailSet struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// Thumbnail is one thumbnail variant.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SongHit is the flattened form of one search hit.
//
// VideoID may be empty when the service returned a hit without playlist
// item data; the resolver maps that to its incomplete-result error.
type SongHit struct {
	VideoID    string
	Title      string
	Album      string
	ArtworkURL string
}

// FirstSong returns the first entry of the first non-empty music shelf,
// flattened into a SongHit. The second return value is false when the
// response contains no song hits at all.
//
// Enumeration order is the service's own; this method never reorders.
func (r *SearchResponse) FirstSong() (*SongHit, bool) {
	item := r.firstShelfItem()
	if item == nil {
		return nil, false
	}

	hit := &SongHit{
		Title:      item.columnText(0),
		Album:      item.albumName(),
		ArtworkURL: item.largestThumbnailURL(),
	}
	if item.PlaylistItemData != nil {
		hit.VideoID = item.PlaylistItemData.VideoID
	}

	return hit, true
}

// firstShelfItem walks the renderer chain down to the first song hit.
func (r *SearchResponse) firstShelfItem() *ListItem {
	if r.Contents == nil || r.Contents.TabbedSearchResultsRenderer == nil {
		return nil
	}
	for _, tab := range r.Contents.TabbedSearchResultsRenderer.Tabs {
		if tab.TabRenderer == nil || tab.TabRenderer.Content == nil ||
			tab.TabRenderer.Content.SectionListRenderer == nil {
			continue
		}
		for _, section := range tab.TabRenderer.Content.SectionListRenderer.Contents {
			shelf := section.MusicShelfRenderer
			if shelf == nil {
				continue
			}
			for _, entry := range shelf.Contents {
				if entry.MusicResponsiveListItemRenderer != nil {
					return entry.MusicResponsiveListItemRenderer
				}
			}
		}
	}
	return nil
}

// columnText returns the first run text of the given flex column.
func (li *ListItem) columnText(column int) string {
	if column >= len(li.FlexColumns) {
		return ""
	}
	renderer := li.FlexColumns[column].MusicResponsiveListItemFlexColumnRenderer
	if renderer == nil || renderer.Text == nil || len(renderer.Text.Runs) == 0 {
		return ""
	}
	return renderer.Text.Runs[0].Text
}

// albumName returns the text of the first run, in any column past the title,
// that links to an album browse target.
func (li *ListItem) albumName() string {
	for i := 1; i < len(li.FlexColumns); i++ {
		renderer := li.FlexColumns[i].MusicResponsiveListItemFlexColumnRenderer
		if renderer == nil || renderer.Text == nil {
			continue
		}
		for _, run := range renderer.Text.Runs {
			if run.NavigationEndpoint == nil || run.NavigationEndpoint.BrowseEndpoint == nil {
				continue
			}
			if strings.HasPrefix(run.NavigationEndpoint.BrowseEndpoint.BrowseID, albumBrowsePrefix) {
				return run.Text
			}
		}
	}
	return ""
}

// largestThumbnailURL returns the last (largest) thumbnail variant URL.
func (li *ListItem) largestThumbnailURL() string {
	if li.Thumbnail == nil || li.Thumbnail.MusicThumbnailRenderer == nil ||
		li.Thumbnail.MusicThumbnailRenderer.Thumbnail == nil {
		return ""
	}
	thumbs := li.Thumbnail.MusicThumbnailRenderer.Thumbnail.Thumbnails
	if len(thumbs) == 0 {
		return ""
	}
	return thumbs[len(thumbs)-1].URL
}
