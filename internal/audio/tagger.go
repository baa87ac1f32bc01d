package audio

import (
	"fmt"
	"os"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/lumine/ytmusic-downloader/internal/model"
)

// TagConfig holds tagging configuration.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true, // write artist/album/title/track number
//	    EmbedArtwork: true,
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no string tags are modified.
	ModifyTags bool

	// EmbedArtwork controls whether cover art is written to the APIC frame.
	EmbedArtwork bool
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:   true,
		EmbedArtwork: true,
	}
}

// Tagger writes ID3 tags to MP3 files.
//
// The conversion service strips metadata from its output, so every
// downloaded file gets its tags rebuilt from the query and the search hit:
//   - Artist (TPE1), Album Artist (TPE2), Album (TALB), Title (TIT2)
//   - Track Number (TRCK)
//   - Cover Art (APIC)
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags(track, album, artworkBytes)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the track's MP3 file.
//
// Existing tags in the file are parsed first so unrelated frames survive.
// Pass nil artwork to skip the picture frame.
func (t *Tagger) SaveTags(track *model.Track, album *model.Album, artwork []byte) error {
	tag, err := id3v2.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		if os.IsNotExist(err) {
			tag = id3v2.NewEmptyTag()
		} else {
			return err
		}
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, track, album)
	}

	if t.config.EmbedArtwork && artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateStringTags rewrites the text frames from the track and album data.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, track *model.Track, album *model.Album) {
	tag.SetArtist(strings.Join(track.Artists, "; "))
	tag.SetTitle(track.Title)

	if album != nil {
		tag.SetAlbum(album.Title)
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, album.Artist)
	}

	if track.Number > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d", track.Number))
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
