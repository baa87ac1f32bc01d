package download

import (
	"errors"

	"github.com/lumine/ytmusic-downloader/internal/converter"
	"github.com/lumine/ytmusic-downloader/internal/model"
	"github.com/lumine/ytmusic-downloader/internal/ytmusic"
)

// FailureKind is the reduced category of a pipeline failure.
//
// Every failure mode of a pipeline run collapses into one of these values
// so batch processing can report per-track results without inspecting raw
// errors.
type FailureKind string

const (
	// FailureNone marks a successful outcome.
	FailureNone FailureKind = ""

	// FailureNotFound: the search service had no results for the query.
	FailureNotFound FailureKind = "not_found"

	// FailureIncompleteResult: the top search hit carried no video ID.
	FailureIncompleteResult FailureKind = "incomplete_result"

	// FailureSearchService: the search call itself failed (network,
	// non-2xx status, malformed response).
	FailureSearchService FailureKind = "search_service_error"

	// FailureNoMatchingVariant: the conversion service offers no variant
	// at the requested bitrate.
	FailureNoMatchingVariant FailureKind = "no_matching_variant"

	// FailureTimedOut: the conversion task did not finish within the
	// polling budget.
	FailureTimedOut FailureKind = "timed_out"

	// FailureMissingAssetURL: the finished task carried no download URL.
	FailureMissingAssetURL FailureKind = "missing_asset_url"

	// FailureConversionService: a conversion-stage call failed for reasons
	// other than the categories above.
	FailureConversionService FailureKind = "conversion_service_error"

	// FailureTransfer: fetching the converted asset bytes failed.
	FailureTransfer FailureKind = "transfer_failed"
)

// Outcome is the result of one pipeline run.
//
// Exactly one of the two shapes holds: OK() with a Reference and Path, or
// a FailureKind with the underlying error.
type Outcome struct {
	// Query is the request this outcome answers.
	Query model.Query

	// Reference is the resolved media reference; nil when resolution failed.
	Reference *ytmusic.Reference

	// Path is the local file path of the downloaded asset, set on success.
	Path string

	// Kind categorizes the failure; FailureNone on success.
	Kind FailureKind

	// Err is the underlying error; nil on success.
	Err error
}

// OK reports whether the run succeeded.
func (o Outcome) OK() bool {
	return o.Kind == FailureNone
}

// classifyResolve maps resolution errors to their outcome categories.
func classifyResolve(err error) FailureKind {
	switch {
	case errors.Is(err, ytmusic.ErrNotFound):
		return FailureNotFound
	case errors.Is(err, ytmusic.ErrIncompleteResult):
		return FailureIncompleteResult
	default:
		return FailureSearchService
	}
}

// classifyConvert maps conversion-stage errors to their outcome categories.
func classifyConvert(err error) FailureKind {
	switch {
	case errors.Is(err, converter.ErrNoMatchingVariant):
		return FailureNoMatchingVariant
	case errors.Is(err, converter.ErrTimedOut):
		return FailureTimedOut
	case errors.Is(err, converter.ErrMissingAssetURL):
		return FailureMissingAssetURL
	default:
		return FailureConversionService
	}
}
