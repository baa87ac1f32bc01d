// Package converter talks to the remote MP3 conversion service.
//
// The service works in three steps, all JSON-over-HTTPS:
//
//  1. Variant discovery: given a watch URL, the service lists the encoding
//     variants (content hash + bitrate) it can produce.
//  2. Task creation: submitting a variant's hash starts a server-side
//     conversion task, identified by an opaque task ID.
//  3. Polling: the task endpoint reports a status string; once it reads
//     "finished" the response also carries the asset download URL.
//
// # Requesting a conversion
//
//	client := converter.NewClient(httpClient, converter.Config{})
//	taskID, err := client.RequestConversion(ctx, ref.URL, 192)
//	if errors.Is(err, converter.ErrNoMatchingVariant) {
//	    // service does not offer the requested bitrate
//	}
//
// Variant selection is an exact bitrate match, first in the service's own
// enumeration order. There is no nearest-bitrate fallback.
//
// # Waiting for completion
//
//	err = client.AwaitCompletion(ctx, taskID, 10) // at most 11 status queries
//
// The poll loop sleeps a fixed interval between attempts through an
// injectable sleep function, so tests can drive many iterations without
// wall-clock delay. Network errors during polling are returned as-is and are
// never conflated with ErrTimedOut.
//
// # Status values
//
// Only the literal "finished" is terminal. The service was never observed to
// report an explicit failure status, so any unrecognized value is treated as
// still pending until the retry budget runs out.
package converter
