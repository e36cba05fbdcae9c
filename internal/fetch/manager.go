package fetch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/http"
	ioutils "github.com/fakemp/collection-gen/internal/io"
	"github.com/fakemp/collection-gen/internal/progress"
)

// Sleeper waits for the given duration or until the context is cancelled.
// The fetcher's throttle delay goes through this so tests run without
// real sleeps.
type Sleeper func(ctx context.Context, d time.Duration)

// Manager downloads the collection's placeholder images one index at a
// time.
//
// The loop is strictly sequential and resumable: an index whose target
// file already exists is skipped without a network request, so rerunning
// the same range retries only what previously failed. Per-item fetch and
// decode failures are reported and tallied but never abort the run.
type Manager struct {
	settings *config.Settings
	client   *http.Client
	images   *ioutils.ImageService

	sleep      Sleeper
	onProgress progress.Func

	processed atomic.Int32
	failed    atomic.Int32
}

// NewManager creates a fetch Manager.
func NewManager(settings *config.Settings, onProgress progress.Func) *Manager {
	return &Manager{
		settings:   settings,
		client:     http.NewClient(settings.Timeout()),
		images:     ioutils.NewImageService(settings.JPEGQuality),
		sleep:      waitCtx,
		onProgress: onProgress,
	}
}

// FetchRange downloads images for indices [start, end) into the configured
// download folder.
//
// For each index the destination is <folder>/<index>.jpg; the source URL
// is the base URL plus the index zero-padded to 5 digits plus ".jpg".
// Response bodies are decoded and re-encoded as JPEG before saving, so a
// non-image response counts as a failure rather than producing a broken
// file.
//
// The throttle delay runs once per iteration whether the index was
// skipped, downloaded, or failed. Filesystem write errors and context
// cancellation abort the run; everything else is tallied and the tally is
// returned alongside a final summary event.
func (m *Manager) FetchRange(ctx context.Context, start, end int) (int, error) {
	if err := ioutils.EnsureDir(m.settings.DownloadPath); err != nil {
		return 0, fmt.Errorf("create download folder: %w", err)
	}

	m.processed.Store(0)
	m.failed.Store(0)

	errCount := 0
	for i := start; i < end; i++ {
		if ctx.Err() != nil {
			return errCount, ctx.Err()
		}

		dest := filepath.Join(m.settings.DownloadPath, fmt.Sprintf("%d.jpg", i))

		if ioutils.FileExists(dest) {
			m.onProgress.Emit(progress.Event{Message: fmt.Sprintf("File %s exists, skipping.", dest), Level: progress.LevelVerbose})
		} else if data, err := m.fetchOne(ctx, i); err != nil {
			if ctx.Err() != nil {
				return errCount, ctx.Err()
			}
			m.onProgress.Emit(progress.Event{Message: fmt.Sprintf("Error downloading image %d: %v", i, err), Level: progress.LevelError})
			errCount++
			m.failed.Add(1)
		} else if err := ioutils.WriteFile(dest, data); err != nil {
			// Disk trouble is not per-item noise; stop the run.
			return errCount, fmt.Errorf("save %s: %w", dest, err)
		} else {
			m.onProgress.Emit(progress.Event{Message: fmt.Sprintf("Successfully downloaded image %d", i), Level: progress.LevelSuccess})
		}

		m.processed.Add(1)

		// Throttles skips too; cheap compared to keeping the host happy.
		m.sleep(ctx, m.settings.Delay())
	}

	m.onProgress.Emit(progress.Event{
		Message: fmt.Sprintf("Finished with %d errors. Can rerun to try to download missing files.", errCount),
		Level:   progress.LevelInfo,
	})

	return errCount, nil
}

// Progress returns how many indices the current run has worked through
// (skips included) and how many of those failed. Safe to call from
// another goroutine while FetchRange runs.
func (m *Manager) Progress() (processed, failed int) {
	return int(m.processed.Load()), int(m.failed.Load())
}

// fetchOne retrieves and validates a single image. The returned bytes are
// always JPEG-encoded, optionally resized.
func (m *Manager) fetchOne(ctx context.Context, index int) ([]byte, error) {
	url := fmt.Sprintf("%s%05d.jpg", m.settings.ImageBaseURL, index)
	m.onProgress.Emit(progress.Event{Message: fmt.Sprintf("Downloading image %d from %s...", index, url), Level: progress.LevelVerbose})

	body, err := m.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var data []byte
	if m.settings.ResizeImages {
		data, err = m.images.ResizeToJPEG(body, m.settings.ImageMaxSize)
	} else {
		data, err = m.images.ToJPEG(body)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return data, nil
}

func waitCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
