package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"command-center/internal/models"
	"command-center/shared/monitoring"
)

type fakeScanner struct {
	rs  *models.ResultSet
	err error
}

func (f *fakeScanner) Scan(ctx context.Context, query string) (*models.ResultSet, error) {
	return f.rs, f.err
}

type fakeEngine struct {
	doc *models.StrategyDocument
}

func (f *fakeEngine) Generate(ctx context.Context, videoID, title string, tags []string) *models.StrategyDocument {
	return f.doc
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleScan(t *testing.T) {
	rs := &models.ResultSet{
		Videos: []models.ScoredVideo{{
			VideoRecord:   models.VideoRecord{ID: "a", Title: "Video A", Views: 1000},
			ViralityScore: 100,
		}},
		Tags: []string{"go", "go", "tutorial"},
	}
	srv := New(&fakeScanner{rs: rs}, nil, monitoring.NewMonitor())
	router := srv.Router()

	w := postJSON(t, router, "/api/scan", map[string]string{"query": "golang"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp scanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ScanID == "" {
		t.Error("missing scan_id")
	}
	if len(resp.Videos) != 1 || resp.Videos[0].ID != "a" {
		t.Errorf("videos = %+v", resp.Videos)
	}
	if resp.Summary.VideoCount != 1 {
		t.Errorf("summary = %+v", resp.Summary)
	}
	if len(resp.TopTags) != 2 || resp.TopTags[0].Tag != "go" || resp.TopTags[0].Count != 2 {
		t.Errorf("top tags = %+v", resp.TopTags)
	}
}

func TestHandleScanMissingQuery(t *testing.T) {
	srv := New(&fakeScanner{}, nil, monitoring.NewMonitor())
	w := postJSON(t, srv.Router(), "/api/scan", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleScanSourceFailure(t *testing.T) {
	monitor := monitoring.NewMonitor()
	srv := New(&fakeScanner{err: errors.New("market data source unavailable: quota")}, nil, monitor)

	w := postJSON(t, srv.Router(), "/api/scan", map[string]string{"query": "golang"})
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if monitor.IsHealthy() {
		t.Error("monitor should record the failed scan")
	}
}

func TestHandleStrategy(t *testing.T) {
	doc := &models.StrategyDocument{
		VideoID: "a",
		Source:  models.SourceError,
		Content: "strategy generation failed: model overloaded",
	}
	srv := New(&fakeScanner{}, &fakeEngine{doc: doc}, monitoring.NewMonitor())

	// Error documents still answer 200; the source label tells the
	// consumer to render an error.
	w := postJSON(t, srv.Router(), "/api/strategy", map[string]any{"video_id": "a"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got models.StrategyDocument
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Source != models.SourceError || got.Content == "" {
		t.Errorf("doc = %+v", got)
	}
}

func TestHandleStrategyWithoutEngine(t *testing.T) {
	srv := New(&fakeScanner{}, nil, monitoring.NewMonitor())
	w := postJSON(t, srv.Router(), "/api/strategy", map[string]any{"video_id": "a"})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	monitor := monitoring.NewMonitor()
	router := New(&fakeScanner{}, nil, monitor).Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("/health = %d, want 200 before any run", w.Code)
	}

	monitor.RecordFailure(errors.New("boom"), 0)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("/health = %d after failure, want 503", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Errorf("/status = %d, want 200", w.Code)
	}
}
