package workers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/exports"
	"github.com/killallgit/editor-api/internal/services/jobs"
)

// Exporter writes the files for one export
type Exporter interface {
	Export(ctx context.Context, jobID uint, req exports.Request) (*exports.Result, error)
}

// ExportProcessor runs export jobs over the snapshot stored in their payload
type ExportProcessor struct {
	jobService jobs.Service
	exporter   Exporter
}

func NewExportProcessor(jobService jobs.Service, exporter Exporter) *ExportProcessor {
	return &ExportProcessor{
		jobService: jobService,
		exporter:   exporter,
	}
}

func (p *ExportProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeExport
}

func (p *ExportProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	log.Printf("[DEBUG] Processing export job %d", job.ID)

	var req exports.Request
	if err := job.DecodePayload(&req); err != nil {
		return models.NewSystemError(
			"invalid_payload",
			"Invalid job payload",
			fmt.Sprintf("Failed to decode export request: %v", err),
			err,
		)
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("[WARN] Failed to update job progress: %v", err)
	}

	result, err := p.exporter.Export(ctx, job.ID, req)
	if err != nil {
		switch {
		case exports.IsSourceMissing(err):
			return models.NewNotFoundError(
				"source_missing",
				fmt.Sprintf("Video %s is no longer available", req.Source.ID),
				err.Error(),
				err,
			)
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return models.NewProcessingError(
				"export_interrupted",
				"Export did not finish",
				err.Error(),
				err,
			)
		default:
			return models.NewStorageError(
				"write_failed",
				"Failed to write export output",
				err.Error(),
				err,
			)
		}
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 100); err != nil {
		log.Printf("[WARN] Failed to update job progress: %v", err)
	}

	jobResult := models.JobResult{
		exports.ResultOutputPath:  result.OutputPath,
		exports.ResultOutputName:  req.OutputName,
		exports.ResultCutListPath: result.CutListPath,
		exports.ResultSize:        result.Size,
		exports.ResultKeptRanges:  result.KeptRanges,
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, jobResult); err != nil {
		return models.NewSystemError(
			"database_error",
			"Failed to mark export as completed",
			err.Error(),
			err,
		)
	}

	log.Printf("[INFO] Export job %d completed: %s", job.ID, result.OutputPath)
	return nil
}
