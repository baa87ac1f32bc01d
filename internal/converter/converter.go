package converter

import (
	"context"
	"errors"
	"time"

	"github.com/lumine/ytmusic-downloader/internal/http"
)

const (
	// DefaultBaseURL is the conversion service's JSON endpoint.
	DefaultBaseURL = "https://music.yt2api.com/api/json"

	// DefaultTaskURL is the endpoint for task status queries.
	DefaultTaskURL = DefaultBaseURL + "/task"

	// DefaultPollInterval is the fixed wait between status queries.
	DefaultPollInterval = time.Second

	// StatusFinished is the only terminal task status.
	StatusFinished = "finished"
)

// ErrNoMatchingVariant is returned when the service's variant list does not
// contain the requested bitrate.
var ErrNoMatchingVariant = errors.New("no variant matches the requested bitrate")

// ErrTimedOut is returned when the polling budget is exhausted without the
// task reaching the finished status.
var ErrTimedOut = errors.New("conversion did not finish within the retry budget")

// ErrMissingAssetURL is returned when a finished task's response carries no
// download URL.
var ErrMissingAssetURL = errors.New("download URL missing from task response")

// DefaultHeaders returns the fixed header set for conversion service calls.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; rv:109.0) Gecko/20100101 Firefox/115.0",
		"Accept":       "application/json, text/plain, */*",
		"Content-Type": "application/json",
		"Referer":      "https://ytapi.cc/",
	}
}

// Variant is one encoding option the service offers for a media reference.
type Variant struct {
	// Hash is the content hash submitted to create a conversion task.
	Hash string `json:"hash"`

	// Bitrate is the variant's bitrate in kbps.
	Bitrate int `json:"bitrate"`
}

// TaskState is one status snapshot of a server-side conversion task.
type TaskState struct {
	// Status is the service's status string; see StatusFinished.
	Status string `json:"status"`

	// Download is the transient asset URL, present once the task finished.
	Download string `json:"download"`
}

// Finished reports whether the snapshot is terminal.
func (s *TaskState) Finished() bool {
	return s.Status == StatusFinished
}

// SleepFunc waits for the given duration or until the context is cancelled,
// returning the context error in the latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Config holds the construction-time configuration for a Client.
// Zero fields select the production defaults.
type Config struct {
	// BaseURL is the variant discovery / task creation endpoint.
	BaseURL string

	// TaskURL is the task status endpoint.
	TaskURL string

	// PollInterval is the fixed wait between status queries.
	PollInterval time.Duration

	// Sleep replaces the poll wait; tests inject a no-op recorder here.
	Sleep SleepFunc
}

// Client is the conversion service client.
//
// A Client is stateless apart from its configuration; one instance may be
// shared by any number of sequential pipeline runs.
type Client struct {
	http         *http.Client
	baseURL      string
	taskURL      string
	pollInterval time.Duration
	sleep        SleepFunc
}

// NewClient creates a conversion service client.
func NewClient(httpClient *http.Client, cfg Config) *Client {
	c := &Client{
		http:         httpClient,
		baseURL:      cfg.BaseURL,
		taskURL:      cfg.TaskURL,
		pollInterval: cfg.PollInterval,
		sleep:        cfg.Sleep,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.taskURL == "" {
		c.taskURL = DefaultTaskURL
	}
	if c.pollInterval == 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.sleep == nil {
		c.sleep = defaultSleep
	}
	return c
}

// ListVariants enumerates the encoding variants the service offers for a
// watch URL, in the service's own order.
func (c *Client) ListVariants(ctx context.Context, watchURL string) ([]Variant, error) {
	request := map[string]string{"ftype": "mp3", "url": watchURL}

	var response struct {
		Tasks []Variant `json:"tasks"`
	}
	if err := c.http.PostJSON(ctx, c.baseURL, request, &response); err != nil {
		return nil, err
	}

	return response.Tasks, nil
}

// CreateTask submits a variant's content hash and returns the opaque ID of
// the conversion task the service started for it.
func (c *Client) CreateTask(ctx context.Context, hash string) (string, error) {
	request := map[string]string{"hash": hash}

	var response struct {
		TaskID string `json:"taskId"`
	}
	if err := c.http.PostJSON(ctx, c.baseURL, request, &response); err != nil {
		return "", err
	}

	return response.TaskID, nil
}

// RequestConversion enumerates the variants for watchURL, selects the first
// one whose bitrate equals targetBitrate exactly, and submits it.
//
// Returns ErrNoMatchingVariant, without issuing a task-creation call, when
// no variant matches. Ties are broken by the service's enumeration order,
// which this client does not reorder.
func (c *Client) RequestConversion(ctx context.Context, watchURL string, targetBitrate int) (string, error) {
	variants, err := c.ListVariants(ctx, watchURL)
	if err != nil {
		return "", err
	}

	for _, variant := range variants {
		if variant.Bitrate == targetBitrate {
			return c.CreateTask(ctx, variant.Hash)
		}
	}

	return "", ErrNoMatchingVariant
}

// TaskState queries one status snapshot for a task ID.
func (c *Client) TaskState(ctx context.Context, taskID string) (*TaskState, error) {
	request := map[string]string{"taskId": taskID}

	var state TaskState
	if err := c.http.PostJSON(ctx, c.taskURL, request, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// AwaitCompletion polls the task until it reports the finished status.
//
// maxAttempts bounds the number of additional retries after the first check,
// so at most maxAttempts+1 status queries are performed. The loop returns
// nil immediately on the first finished snapshot and ErrTimedOut once the
// budget is exhausted. Any status other than "finished", including values
// this client does not recognize, counts as still pending.
//
// Network failures during polling are returned as-is; they are a hard
// failure of the call, never converted into ErrTimedOut.
func (c *Client) AwaitCompletion(ctx context.Context, taskID string, maxAttempts int) error {
	for attempt := 0; ; attempt++ {
		state, err := c.TaskState(ctx, taskID)
		if err != nil {
			return err
		}
		if state.Finished() {
			return nil
		}
		if attempt >= maxAttempts {
			return ErrTimedOut
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return err
		}
	}
}

// DownloadURL reads the finished task one final time and returns its
// transient asset URL.
//
// This is a separate, final read of the task, distinct from the polling
// reads. Returns ErrMissingAssetURL when the response carries no URL.
func (c *Client) DownloadURL(ctx context.Context, taskID string) (string, error) {
	state, err := c.TaskState(ctx, taskID)
	if err != nil {
		return "", err
	}
	if state.Download == "" {
		return "", ErrMissingAssetURL
	}
	return state.Download, nil
}
