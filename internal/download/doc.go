// Package download provides the orchestration logic for turning
// "Artist - Title" queries into tagged MP3 files.
//
// # Pipeline
//
// The Pipeline runs one query through three sequential stages:
//
//  1. Resolve the query to a media reference via the search service
//  2. Request an MP3 conversion and poll the task until finished
//  3. Fetch the converted bytes to the destination path
//
// Every failure is reduced to a categorized Outcome instead of an error,
// so callers can classify results without unwrapping:
//
//	outcome := pipeline.Run(ctx, query, destPath)
//	if !outcome.OK() {
//	    fmt.Println(outcome.Kind, outcome.Err)
//	}
//
// # Manager
//
// The Manager coordinates a whole batch:
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Initialize(queryLines, "Various Artists", "Downloads")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = manager.Download(ctx)
//
// A failed track never aborts the batch; its outcome is recorded and the
// next track proceeds.
//
// # Concurrency
//
// Tracks run with at most settings.MaxConcurrentTracks in flight. The
// default of 1 processes the batch strictly sequentially in submission
// order.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package download
