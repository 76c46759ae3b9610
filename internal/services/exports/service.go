package exports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/jobs"
	"github.com/killallgit/editor-api/internal/services/storage"
)

type service struct {
	jobs    jobs.Service
	storage storage.Backend
}

// NewService creates the export service on top of the job queue
func NewService(jobService jobs.Service, backend storage.Backend) Service {
	return &service{jobs: jobService, storage: backend}
}

// RequestExport queues an export of the snapshot for the worker pool
func (s *service) RequestExport(ctx context.Context, sessionID string, req Request) (*models.Job, error) {
	if strings.TrimSpace(req.Source.ID) == "" {
		return nil, fmt.Errorf("export request has no source")
	}

	payload, err := models.NewPayload(req)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.EnqueueJob(ctx, models.JobTypeExport, payload, jobs.WithCreatedBy(sessionID))
	if err != nil {
		return nil, fmt.Errorf("queueing export: %w", err)
	}

	log.Printf("[INFO] Export %d queued for session %s (%s, %d segments, %d overlays)",
		job.ID, sessionID, req.OutputName, len(req.Segments), len(req.Overlays))
	return job, nil
}

// GetExport returns the export job with the given id
func (s *service) GetExport(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			return nil, ErrExportNotFound
		}
		return nil, err
	}
	if job.Type != models.JobTypeExport {
		return nil, ErrExportNotFound
	}
	return job, nil
}

// ListExports returns the most recent exports a session requested
func (s *service) ListExports(ctx context.Context, sessionID string, limit int) ([]*models.Job, error) {
	return s.jobs.ListJobsByCreator(ctx, models.JobTypeExport, sessionID, limit)
}

// CancelExport cancels an export no worker has picked up yet
func (s *service) CancelExport(ctx context.Context, id uint) error {
	if _, err := s.GetExport(ctx, id); err != nil {
		return err
	}
	return s.jobs.CancelJob(ctx, id)
}

// RetryExport puts a failed export back on the queue
func (s *service) RetryExport(ctx context.Context, id uint) (*models.Job, error) {
	if _, err := s.GetExport(ctx, id); err != nil {
		return nil, err
	}
	return s.jobs.RetryFailedJob(ctx, id)
}

// OutputFile opens the file a completed export produced
func (s *service) OutputFile(ctx context.Context, id uint) (*models.Job, *os.File, error) {
	job, err := s.GetExport(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if job.Status != models.JobStatusCompleted {
		return nil, nil, ErrExportNotReady
	}

	path, ok := job.GetResultString(ResultOutputPath)
	if !ok || path == "" {
		return nil, nil, ErrExportNotReady
	}
	file, err := s.storage.Open(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, ErrExportNotFound
		}
		return nil, nil, err
	}
	return job, file, nil
}
