package fetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/progress"
)

func testManager(t *testing.T, baseURL string) (*Manager, *config.Settings, *int32) {
	t.Helper()

	settings := config.DefaultSettings()
	settings.DownloadPath = t.TempDir()
	settings.ImageBaseURL = baseURL
	settings.RequestDelay = 0.5

	m := NewManager(settings, nil)

	var sleeps int32
	m.sleep = func(ctx context.Context, d time.Duration) {
		atomic.AddInt32(&sleeps, 1)
	}

	return m, settings, &sleeps
}

// imageServer serves a small JPEG for /mp%05d.jpg paths and records the
// number of requests.
func imageServer(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatal(err)
	}
	body := buf.Bytes()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(body)
	}))
}

func TestFetchRange_DownloadsAndSaves(t *testing.T) {
	var requests int32
	server := imageServer(t, &requests)
	defer server.Close()

	m, settings, sleeps := testManager(t, server.URL+"/mp")

	errCount, err := m.FetchRange(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("FetchRange: %v", err)
	}
	if errCount != 0 {
		t.Errorf("errCount = %d, want 0", errCount)
	}
	if n := atomic.LoadInt32(&requests); n != 3 {
		t.Errorf("requests = %d, want 3", n)
	}
	if n := atomic.LoadInt32(sleeps); n != 3 {
		t.Errorf("sleeps = %d, want one per iteration", n)
	}

	for i := 0; i < 3; i++ {
		path := filepath.Join(settings.DownloadPath, fmt.Sprintf("%d.jpg", i))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("image %d not saved: %v", i, err)
		}
		if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
			t.Errorf("image %d is not a valid JPEG: %v", i, err)
		}
	}
}

func TestFetchRange_SkipsExistingWithoutRequests(t *testing.T) {
	var requests int32
	server := imageServer(t, &requests)
	defer server.Close()

	m, settings, sleeps := testManager(t, server.URL+"/mp")

	for i := 0; i < 5; i++ {
		path := filepath.Join(settings.DownloadPath, fmt.Sprintf("%d.jpg", i))
		if err := os.WriteFile(path, []byte("cached"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	errCount, err := m.FetchRange(context.Background(), 0, 5)
	if err != nil {
		t.Fatalf("FetchRange: %v", err)
	}
	if errCount != 0 {
		t.Errorf("errCount = %d, want 0", errCount)
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("requests = %d, want 0 for fully cached range", n)
	}
	// Throttle still applies on skipped iterations.
	if n := atomic.LoadInt32(sleeps); n != 5 {
		t.Errorf("sleeps = %d, want 5", n)
	}
}

func TestFetchRange_CountsFailuresAndContinues(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mp00000.jpg":
			http.NotFound(w, r)
		case "/mp00001.jpg":
			w.Write([]byte("not an image"))
		default:
			w.Write(buf.Bytes())
		}
	}))
	defer server.Close()

	m, settings, _ := testManager(t, server.URL+"/mp")

	errCount, err := m.FetchRange(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("FetchRange: %v", err)
	}
	if errCount != 2 {
		t.Errorf("errCount = %d, want 2 (404 + undecodable body)", errCount)
	}

	// The good index still got through.
	if _, err := os.Stat(filepath.Join(settings.DownloadPath, "2.jpg")); err != nil {
		t.Errorf("image 2 should have been saved: %v", err)
	}
	// The failed ones left nothing behind, so a rerun retries them.
	for _, name := range []string{"0.jpg", "1.jpg"} {
		if _, err := os.Stat(filepath.Join(settings.DownloadPath, name)); err == nil {
			t.Errorf("%s should not exist after failed fetch", name)
		}
	}
}

func TestFetchRange_ReportsSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	settings := config.DefaultSettings()
	settings.DownloadPath = t.TempDir()
	settings.ImageBaseURL = server.URL + "/mp"

	var events []progress.Event
	m := NewManager(settings, func(e progress.Event) { events = append(events, e) })
	m.sleep = func(ctx context.Context, d time.Duration) {}

	if _, err := m.FetchRange(context.Background(), 0, 2); err != nil {
		t.Fatalf("FetchRange: %v", err)
	}

	if len(events) == 0 {
		t.Fatal("expected progress events")
	}
	last := events[len(events)-1]
	if last.Level != progress.LevelInfo {
		t.Errorf("summary level = %v, want LevelInfo", last.Level)
	}
	if want := "Finished with 2 errors. Can rerun to try to download missing files."; last.Message != want {
		t.Errorf("summary = %q, want %q", last.Message, want)
	}
}

func TestFetchRange_CancelledContext(t *testing.T) {
	var requests int32
	server := imageServer(t, &requests)
	defer server.Close()

	m, _, _ := testManager(t, server.URL+"/mp")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.FetchRange(ctx, 0, 10)
	if err == nil {
		t.Fatal("expected context error")
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("requests = %d, want 0 after pre-cancelled context", n)
	}
}
