package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.24" dur="3.1">welcome back to the channel</text>
  <text start="3.4" dur="2.8">today we&#39;re talking about budgets</text>
  <text start="6.2" dur="1.5">   </text>
</transcript>`

func newTestClient(server *httptest.Server) *Client {
	c := NewClient("en")
	c.baseURL = server.URL
	return c
}

func TestFetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	segments, err := newTestClient(server).Fetch(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotQuery != "lang=en&v=abc123" {
		t.Errorf("query = %s", gotQuery)
	}
	// The blank segment is dropped; order is preserved.
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Text != "welcome back to the channel" {
		t.Errorf("segments[0].Text = %q", segments[0].Text)
	}
	if segments[1].Text != "today we're talking about budgets" {
		t.Errorf("entities not unescaped: %q", segments[1].Text)
	}
	if segments[0].Start != 0.24 || segments[0].Duration != 3.1 {
		t.Errorf("timing = %v/%v", segments[0].Start, segments[0].Duration)
	}
}

func TestFetchEmptyBodyMeansNoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if _, err := newTestClient(server).Fetch(context.Background(), "abc123"); err == nil {
		t.Error("expected error for captionless video")
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := newTestClient(server).Fetch(context.Background(), "abc123"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFetchMalformedXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<transcript><text"))
	}))
	defer server.Close()

	if _, err := newTestClient(server).Fetch(context.Background(), "abc123"); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestFetchCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTimedText))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancellation is just another fetch failure; the engine's fallback
	// handles it.
	if _, err := newTestClient(server).Fetch(ctx, "abc123"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
