// Package model defines the core data structures used throughout
// the ytmusic-downloader application.
//
// # Query
//
// Query is the free-text media request for one track, split into an artist
// list and a title:
//
//	q, _ := model.ParseQuery("Daft Punk - Harder Better Faster Stronger")
//	fmt.Println(q.Text()) // "Daft Punk Harder Better Faster Stronger"
//
// # Album and Track
//
// Album represents one batch of requested tracks; Track is a single entry
// with its computed destination path:
//
//	album := model.NewAlbum("Daft Punk", "Discovery", pathConfig)
//	track := model.NewTrack(album, 1, []string{"Daft Punk"}, "One More Time", trackConfig)
//	fmt.Println(track.Path) // Where the downloaded MP3 will be saved
//
// # Path Configuration
//
// PathConfig and TrackConfig control how destination paths are computed using
// placeholders: {artist}, {album}, {title}, {tracknum}
package model
