package converter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lumine/ytmusic-downloader/internal/http"
)

// fakeService is an httptest-backed stand-in for the conversion service.
type fakeService struct {
	variants []Variant

	// statuses holds the sequence of status strings the task endpoint
	// reports; the last entry repeats once the sequence is exhausted.
	statuses []string
	download string

	variantCalls atomic.Int32
	createCalls  atomic.Int32
	pollCalls    atomic.Int32

	base *httptest.Server
	task *httptest.Server
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	svc := &fakeService{}

	svc.base = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)

		if _, isCreate := body["hash"]; isCreate {
			svc.createCalls.Add(1)
			json.NewEncoder(w).Encode(map[string]string{"taskId": "t1"})
			return
		}

		svc.variantCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"tasks": svc.variants})
	}))
	t.Cleanup(svc.base.Close)

	svc.task = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		call := int(svc.pollCalls.Add(1)) - 1
		status := svc.statuses[len(svc.statuses)-1]
		if call < len(svc.statuses) {
			status = svc.statuses[call]
		}

		resp := map[string]string{"status": status}
		if status == StatusFinished && svc.download != "" {
			resp["download"] = svc.download
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(svc.task.Close)

	return svc
}

func (svc *fakeService) client() *Client {
	return NewClient(http.NewClient(http.Config{}), Config{
		BaseURL: svc.base.URL,
		TaskURL: svc.task.URL,
		Sleep:   func(ctx context.Context, d time.Duration) error { return nil },
	})
}

func TestClient_RequestConversion_FirstExactMatch(t *testing.T) {
	svc := newFakeService(t)
	svc.variants = []Variant{
		{Hash: "h128", Bitrate: 128},
		{Hash: "h192a", Bitrate: 192},
		{Hash: "h192b", Bitrate: 192},
	}

	var createdHash string
	// Swap in a handler that records which hash got submitted.
	svc.base.Config.Handler = nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if hash, ok := body["hash"]; ok {
			createdHash = hash
			json.NewEncoder(w).Encode(map[string]string{"taskId": "t1"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"tasks": svc.variants})
	})

	taskID, err := svc.client().RequestConversion(context.Background(), "https://music.youtube.com/watch?v=abc", 192)
	if err != nil {
		t.Fatalf("RequestConversion failed: %v", err)
	}
	if taskID != "t1" {
		t.Errorf("taskID = %q, want %q", taskID, "t1")
	}
	if createdHash != "h192a" {
		t.Errorf("submitted hash = %q, want first matching variant %q", createdHash, "h192a")
	}
}

func TestClient_RequestConversion_NoMatchingVariant(t *testing.T) {
	svc := newFakeService(t)
	svc.variants = []Variant{
		{Hash: "h128", Bitrate: 128},
		{Hash: "h320", Bitrate: 320},
	}

	_, err := svc.client().RequestConversion(context.Background(), "https://music.youtube.com/watch?v=abc", 192)
	if !errors.Is(err, ErrNoMatchingVariant) {
		t.Fatalf("error = %v, want ErrNoMatchingVariant", err)
	}
	if got := svc.createCalls.Load(); got != 0 {
		t.Errorf("task-creation calls = %d, want 0", got)
	}
}

func TestClient_AwaitCompletion_FinishesOnFirstFinishedResponse(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []string
		wantPolls int32
	}{
		{"finished immediately", []string{"finished"}, 1},
		{"pending then finished", []string{"pending", "finished"}, 2},
		{"unrecognized status treated as pending", []string{"transcoding", "queued", "finished"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(t)
			svc.statuses = tt.statuses

			if err := svc.client().AwaitCompletion(context.Background(), "t1", 10); err != nil {
				t.Fatalf("AwaitCompletion failed: %v", err)
			}
			if got := svc.pollCalls.Load(); got != tt.wantPolls {
				t.Errorf("poll calls = %d, want %d", got, tt.wantPolls)
			}
		})
	}
}

func TestClient_AwaitCompletion_TimedOut(t *testing.T) {
	// maxAttempts bounds additional retries, so total queries = maxAttempts+1.
	for _, maxAttempts := range []int{0, 1, 2, 5} {
		t.Run(fmt.Sprintf("maxAttempts=%d", maxAttempts), func(t *testing.T) {
			svc := newFakeService(t)
			svc.statuses = []string{"pending"}

			err := svc.client().AwaitCompletion(context.Background(), "t1", maxAttempts)
			if !errors.Is(err, ErrTimedOut) {
				t.Fatalf("error = %v, want ErrTimedOut", err)
			}
			if got := svc.pollCalls.Load(); got != int32(maxAttempts+1) {
				t.Errorf("poll calls = %d, want %d", got, maxAttempts+1)
			}
		})
	}
}

func TestClient_AwaitCompletion_SleepsBetweenAttempts(t *testing.T) {
	svc := newFakeService(t)
	svc.statuses = []string{"pending", "pending", "finished"}

	var sleeps int
	client := NewClient(http.NewClient(http.Config{}), Config{
		BaseURL: svc.base.URL,
		TaskURL: svc.task.URL,
		Sleep: func(ctx context.Context, d time.Duration) error {
			if d != DefaultPollInterval {
				t.Errorf("sleep duration = %v, want %v", d, DefaultPollInterval)
			}
			sleeps++
			return nil
		},
	})

	if err := client.AwaitCompletion(context.Background(), "t1", 10); err != nil {
		t.Fatalf("AwaitCompletion failed: %v", err)
	}
	// No sleep after the final, finished query.
	if sleeps != 2 {
		t.Errorf("sleeps = %d, want 2", sleeps)
	}
}

func TestClient_AwaitCompletion_NetworkErrorIsNotTimedOut(t *testing.T) {
	svc := newFakeService(t)
	svc.statuses = []string{"pending"}
	svc.task.Config.Handler = nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "gone", nethttp.StatusBadGateway)
	})

	err := svc.client().AwaitCompletion(context.Background(), "t1", 3)
	if err == nil {
		t.Fatal("expected error from failing task endpoint")
	}
	if errors.Is(err, ErrTimedOut) {
		t.Error("network failure must not be reported as ErrTimedOut")
	}
}

func TestClient_DownloadURL(t *testing.T) {
	svc := newFakeService(t)
	svc.statuses = []string{"finished"}
	svc.download = "https://cdn.test/f.mp3"

	url, err := svc.client().DownloadURL(context.Background(), "t1")
	if err != nil {
		t.Fatalf("DownloadURL failed: %v", err)
	}
	if url != "https://cdn.test/f.mp3" {
		t.Errorf("url = %q", url)
	}
}

func TestClient_DownloadURL_Missing(t *testing.T) {
	svc := newFakeService(t)
	svc.statuses = []string{"finished"}
	svc.download = ""

	_, err := svc.client().DownloadURL(context.Background(), "t1")
	if !errors.Is(err, ErrMissingAssetURL) {
		t.Errorf("error = %v, want ErrMissingAssetURL", err)
	}
}
