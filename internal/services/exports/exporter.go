package exports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/killallgit/editor-api/internal/editor"
	"github.com/killallgit/editor-api/internal/services/storage"
)

const maxOutputNameLength = 120

// Result describes the files an export produced
type Result struct {
	OutputPath  string
	CutListPath string
	Size        int64
	KeptRanges  int
}

// Exporter produces export files. The output is a byte-for-byte copy of the
// source under the requested name; segments and overlays are recorded in the
// cut list written beside it and are not applied to the video.
type Exporter struct {
	sources SourceOpener
	storage storage.Backend
}

// NewExporter creates an exporter that writes into backend
func NewExporter(sources SourceOpener, backend storage.Backend) *Exporter {
	return &Exporter{sources: sources, storage: backend}
}

// Export copies the source and writes the cut list
func (e *Exporter) Export(ctx context.Context, jobID uint, req Request) (*Result, error) {
	video, file, err := e.sources.Open(ctx, req.Source.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMissing, req.Source.ID, err)
	}
	defer file.Close()

	name := OutputFileName(jobID, req.OutputName)
	outputPath, size, err := e.storage.Save(ctx, file, name)
	if err != nil {
		return nil, fmt.Errorf("writing export output: %w", err)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = video.Duration
	}
	kept := KeptRanges(req.Segments, duration)

	list := CutList{
		Title:     req.OutputName,
		MediaPath: req.Source.Name,
		ClipName:  video.Name,
		FrameRate: req.FrameRate,
		Kept:      kept,
		Overlays:  req.Overlays,
	}
	cutListPath, _, err := e.storage.Save(ctx, strings.NewReader(list.Render()), name+".edl")
	if err != nil {
		if delErr := e.storage.Delete(ctx, outputPath); delErr != nil {
			log.Printf("[WARN] Failed to remove partial export %s: %v", outputPath, delErr)
		}
		return nil, fmt.Errorf("writing cut list: %w", err)
	}

	log.Printf("[DEBUG] Export %d wrote %s (%d bytes, %d kept ranges)", jobID, outputPath, size, len(kept))

	return &Result{
		OutputPath:  outputPath,
		CutListPath: cutListPath,
		Size:        size,
		KeptRanges:  len(kept),
	}, nil
}

// OutputFileName is the stored name of an export: the job id followed by
// the sanitized output name
func OutputFileName(jobID uint, outputName string) string {
	name := storage.SanitizeName(outputName, maxOutputNameLength)
	if name == "" {
		name = editor.DefaultExportName
	}
	return fmt.Sprintf("%d-%s", jobID, name)
}

// IsSourceMissing reports whether an export failed because its source is gone
func IsSourceMissing(err error) bool {
	return errors.Is(err, ErrSourceMissing)
}
