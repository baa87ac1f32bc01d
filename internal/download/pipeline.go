package download

import (
	"context"
	"fmt"

	"github.com/lumine/ytmusic-downloader/internal/converter"
	"github.com/lumine/ytmusic-downloader/internal/http"
	"github.com/lumine/ytmusic-downloader/internal/model"
	"github.com/lumine/ytmusic-downloader/internal/ytmusic"
)

// Pipeline runs the resolve, convert and transfer stages for one query.
//
// The stages are strictly sequential:
//
//  1. Resolve the query to a media reference through the search service.
//  2. Request an MP3 conversion at the target bitrate and poll the task
//     until it finishes.
//  3. Fetch the converted bytes to the destination path.
//
// A Pipeline is stateless between runs; one instance serves a whole batch.
type Pipeline struct {
	resolver  *ytmusic.Resolver
	converter *converter.Client

	// transfer fetches the converted asset; it is a separate client because
	// the asset host expects the conversion service's header set.
	transfer *http.Client

	targetBitrate  int
	maxPollRetries int

	onProgress func(ProgressEvent)
}

// PipelineConfig holds the construction-time configuration for a Pipeline.
type PipelineConfig struct {
	// TargetBitrate is the exact bitrate to request, in kbps.
	TargetBitrate int

	// MaxPollRetries bounds the task polling; see converter.AwaitCompletion.
	MaxPollRetries int

	// OnProgress receives stage updates; nil disables reporting.
	OnProgress func(ProgressEvent)
}

// NewPipeline creates a Pipeline from its stage clients.
func NewPipeline(resolver *ytmusic.Resolver, conv *converter.Client, transfer *http.Client, cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		resolver:       resolver,
		converter:      conv,
		transfer:       transfer,
		targetBitrate:  cfg.TargetBitrate,
		maxPollRetries: cfg.MaxPollRetries,
		onProgress:     cfg.OnProgress,
	}
}

// Run executes the full pipeline for one query, saving the asset to
// destPath.
//
// Run never returns an error; every failure mode is reduced to a
// categorized Outcome so batch callers can continue with the next track.
// A failed run leaves no partial file unless the transfer itself was
// interrupted mid-write.
func (p *Pipeline) Run(ctx context.Context, query model.Query, destPath string) Outcome {
	outcome := Outcome{Query: query}

	ref, err := p.resolver.Resolve(ctx, query)
	if err != nil {
		outcome.Kind = classifyResolve(err)
		outcome.Err = err
		return outcome
	}
	outcome.Reference = ref

	p.banner(ref, destPath)

	taskID, err := p.converter.RequestConversion(ctx, ref.URL, p.targetBitrate)
	if err != nil {
		outcome.Kind = classifyConvert(err)
		outcome.Err = err
		return outcome
	}

	p.progress(ProgressEvent{Message: fmt.Sprintf("Converting %s (task %s)", ref.Title, taskID), Level: LevelVerbose})

	if err := p.converter.AwaitCompletion(ctx, taskID, p.maxPollRetries); err != nil {
		outcome.Kind = classifyConvert(err)
		outcome.Err = err
		return outcome
	}

	assetURL, err := p.converter.DownloadURL(ctx, taskID)
	if err != nil {
		outcome.Kind = classifyConvert(err)
		outcome.Err = err
		return outcome
	}

	if err := p.transfer.DownloadFile(ctx, assetURL, destPath, nil); err != nil {
		outcome.Kind = FailureTransfer
		outcome.Err = err
		return outcome
	}

	outcome.Path = destPath
	p.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded: %s", ref.Title), Level: LevelSuccess})
	return outcome
}

// banner reports the resolved reference before conversion starts.
func (p *Pipeline) banner(ref *ytmusic.Reference, destPath string) {
	p.progress(ProgressEvent{Message: "Title:   " + ref.Title, Level: LevelInfo})
	if ref.Album != "" {
		p.progress(ProgressEvent{Message: "Album:   " + ref.Album, Level: LevelInfo})
	}
	p.progress(ProgressEvent{Message: "Origin:  " + ref.URL, Level: LevelInfo})
	p.progress(ProgressEvent{Message: "Save To: " + destPath, Level: LevelInfo})
}

func (p *Pipeline) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
