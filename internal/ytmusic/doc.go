// Package ytmusic resolves free-text media requests against the YouTube
// Music search API.
//
// The package issues one InnerTube search call scoped to song results and
// takes the first hit verbatim. There is no ranking, scoring, or
// disambiguation beyond what the remote service provides; callers accept the
// risk of a wrong top match.
//
// # Resolving a query
//
//	resolver := ytmusic.NewResolver(client, "")
//	ref, err := resolver.Resolve(ctx, query)
//	if errors.Is(err, ytmusic.ErrNotFound) {
//	    fmt.Println("Song not found.")
//	    return
//	}
//	fmt.Printf("Found: %s (%s)\n", ref.Title, ref.URL)
//
// # Canonical URL
//
// A resolved reference always carries exactly one canonical URL, derived
// deterministically from the video ID the search service returned:
//
//	https://music.youtube.com/watch?v=<videoId>
//
// # Search data format
//
// The InnerTube response nests song hits several renderer layers deep. The
// dto subpackage mirrors just the layers this resolver needs and flattens
// the first hit into a SongHit.
package ytmusic
