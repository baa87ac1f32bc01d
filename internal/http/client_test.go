package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClient_PostJSON(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"taskId": "t1"})
	}))
	defer server.Close()

	client := NewClient(Config{Headers: map[string]string{
		"User-Agent":   "test-agent",
		"Content-Type": "application/json",
		"Referer":      "https://example.test/",
	}})

	var resp struct {
		TaskID string `json:"taskId"`
	}
	err := client.PostJSON(context.Background(), server.URL, map[string]string{"hash": "h1"}, &resp)
	if err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}

	if resp.TaskID != "t1" {
		t.Errorf("TaskID = %q, want %q", resp.TaskID, "t1")
	}
	if gotBody["hash"] != "h1" {
		t.Errorf("request body hash = %q, want %q", gotBody["hash"], "h1")
	}
	if got := gotHeaders.Get("User-Agent"); got != "test-agent" {
		t.Errorf("User-Agent = %q, want %q", got, "test-agent")
	}
	if got := gotHeaders.Get("Referer"); got != "https://example.test/" {
		t.Errorf("Referer = %q, want %q", got, "https://example.test/")
	}
}

func TestClient_PostJSON_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{})
	err := client.PostJSON(context.Background(), server.URL, map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestClient_DownloadFile(t *testing.T) {
	content := []byte("mp3 bytes here")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(content)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "out.mp3")
	client := NewClient(Config{})

	var lastWritten int64
	err := client.DownloadFile(context.Background(), server.URL, dest, func(written, total int64) {
		lastWritten = written
	})
	if err != nil {
		t.Fatalf("DownloadFile failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("downloaded content = %q, want %q", got, content)
	}
	if lastWritten != int64(len(content)) {
		t.Errorf("progress reported %d bytes, want %d", lastWritten, len(content))
	}
}

func TestClient_DownloadFile_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "out.mp3")
	client := NewClient(Config{})

	if err := client.DownloadFile(context.Background(), server.URL, dest, nil); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if _, err := os.Stat(dest); err == nil {
		t.Error("destination file should not exist after failed download")
	}
}
