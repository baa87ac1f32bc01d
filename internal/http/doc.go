// Package http provides an HTTP client configured for the remote JSON
// services used by ytmusic-downloader.
//
// The Client in this package handles:
//   - A fixed header set applied to every request
//   - JSON POST round trips with status checking
//   - File downloads with progress tracking
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(http.Config{Headers: headers})
//
//	// JSON round trip
//	var resp taskResponse
//	err := client.PostJSON(ctx, taskURL, request, &resp)
//
//	// Download file with progress callback
//	client.DownloadFile(ctx, assetURL, "/path/to/file.mp3", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress
// tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
