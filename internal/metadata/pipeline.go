package metadata

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fakemp/collection-gen/internal/config"
	"github.com/fakemp/collection-gen/internal/generate"
	ioutils "github.com/fakemp/collection-gen/internal/io"
	"github.com/fakemp/collection-gen/internal/progress"
)

// Pipeline generates and writes the whole collection's metadata.
//
// It is the metadata counterpart of fetch.Manager: one synthesized record
// per index in [0, N), written straight to disk and dropped from memory.
// Serialization and write failures are not expected under normal inputs,
// so any error aborts the run instead of being tallied.
type Pipeline struct {
	settings   *config.Settings
	synth      *generate.Synthesizer
	writer     *Writer
	onProgress progress.Func

	written atomic.Int32
}

// NewPipeline creates a metadata Pipeline from settings.
func NewPipeline(settings *config.Settings, onProgress progress.Func) *Pipeline {
	return &Pipeline{
		settings:   settings,
		synth:      generate.NewSynthesizer(settings, nil),
		writer:     NewWriter(settings.MetadataPath, settings.SeparateTokenTypes),
		onProgress: onProgress,
	}
}

// GenerateAll builds and writes metadata for every index in [0, N).
//
// The output root is created first if absent. Reruns regenerate every
// record: category and image fields come out identical, attribute lists
// are re-sampled.
func (p *Pipeline) GenerateAll(ctx context.Context) error {
	if err := ioutils.EnsureDir(p.settings.MetadataPath); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	p.written.Store(0)

	for i := 0; i < p.settings.NumItems; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		md := p.synth.Metadata(i)
		if err := p.writer.Write(i, md); err != nil {
			return fmt.Errorf("write metadata %d: %w", i, err)
		}
		p.written.Add(1)
		p.onProgress.Emit(progress.Event{
			Message: fmt.Sprintf("Wrote metadata %d (%s)", i, md.TokenType),
			Level:   progress.LevelVerbose,
		})
	}

	p.onProgress.Emit(progress.Event{
		Message: fmt.Sprintf("Metadata generation complete: %d records under %s", p.settings.NumItems, p.settings.MetadataPath),
		Level:   progress.LevelInfo,
	})

	return nil
}

// Progress returns how many records the current run has written. Safe to
// call from another goroutine while GenerateAll runs.
func (p *Pipeline) Progress() int {
	return int(p.written.Load())
}
