package model

import (
	"errors"
	"strings"
)

// ErrEmptyQuery is returned by ParseQuery for lines that contain no title.
var ErrEmptyQuery = errors.New("empty query")

// Query is the free-text media request for one track.
//
// Artists may be empty when the request line carried no artist part; such
// tracks are skipped by the batch driver because no usable search text can
// be derived for them.
type Query struct {
	// Artists is the list of artist names, in the order they were given.
	Artists []string

	// Title is the track title.
	Title string
}

// ParseQuery parses a request line of the form "Artist - Title".
//
// The first " - " separates the artist part from the title; everything after
// it belongs to the title, so titles containing " - " survive as long as the
// artist part comes first. Multiple artists are separated by ";" within the
// artist part:
//
//	ParseQuery("Daft Punk - One More Time")
//	ParseQuery("Nero; Skrillex - Promises - Remix")
//
// A line without a separator is treated as a bare title with no artists.
// Returns ErrEmptyQuery when the line is blank or yields an empty title.
func ParseQuery(line string) (Query, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Query{}, ErrEmptyQuery
	}

	artistPart, title, found := strings.Cut(line, " - ")
	if !found {
		return Query{Title: line}, nil
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Query{}, ErrEmptyQuery
	}

	var artists []string
	for _, a := range strings.Split(artistPart, ";") {
		if a = strings.TrimSpace(a); a != "" {
			artists = append(artists, a)
		}
	}

	return Query{Artists: artists, Title: title}, nil
}

// Text returns the flattened search text: all artists followed by the title,
// joined with single spaces. This is the exact string submitted to the
// search service.
func (q Query) Text() string {
	parts := make([]string, 0, len(q.Artists)+1)
	parts = append(parts, q.Artists...)
	if q.Title != "" {
		parts = append(parts, q.Title)
	}
	return strings.Join(parts, " ")
}

// HasArtists reports whether the query carries at least one artist name.
func (q Query) HasArtists() bool {
	return len(q.Artists) > 0
}
