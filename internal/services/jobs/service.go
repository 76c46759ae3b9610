package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/killallgit/editor-api/internal/models"
)

const (
	DefaultMaxRetries = 3
	DefaultPriority   = 0
)

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) EnqueueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, opts ...JobOption) (*models.Job, error) {
	cfg := &jobConfig{
		Priority:   DefaultPriority,
		MaxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	job := &models.Job{
		Type:       jobType,
		Status:     models.JobStatusPending,
		Payload:    payload,
		Priority:   cfg.Priority,
		MaxRetries: cfg.MaxRetries,
		CreatedBy:  cfg.CreatedBy,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	log.Printf("[DEBUG] Enqueued %s job ID %d with priority %d", jobType, job.ID, job.Priority)

	return job, nil
}

func (s *service) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return job, nil
}

func (s *service) ListJobsByCreator(ctx context.Context, jobType models.JobType, createdBy string, limit int) ([]*models.Job, error) {
	jobs, err := s.repo.GetJobsByCreator(ctx, jobType, createdBy, limit)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *service) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	job, err := s.repo.ClaimNextJob(ctx, workerID, jobTypes)
	if err != nil {
		if errors.Is(err, ErrNoJobsAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("claiming job: %w", err)
	}

	log.Printf("[DEBUG] Worker %s claimed %s job ID %d", workerID, job.Type, job.ID)

	return job, nil
}

func (s *service) UpdateProgress(ctx context.Context, jobID uint, progress int) error {
	if err := s.repo.UpdateJobProgress(ctx, jobID, progress); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("updating job progress: %w", err)
	}

	if progress%10 == 0 || progress == 100 {
		log.Printf("[DEBUG] Job %d progress: %d%%", jobID, progress)
	}

	return nil
}

func (s *service) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	if err := s.repo.CompleteJob(ctx, jobID, result); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("completing job: %w", err)
	}

	log.Printf("[DEBUG] Job %d completed successfully", jobID)

	return nil
}

func (s *service) FailJob(ctx context.Context, jobID uint, err error) error {
	errorMsg := err.Error()

	if err := s.repo.FailJob(ctx, jobID, errorMsg); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("failing job: %w", err)
	}

	// Check if job is retryable
	job, _ := s.repo.GetJob(ctx, jobID)
	if job != nil && job.IsRetryable() {
		log.Printf("[ERROR] Job %d failed (retry %d/%d): %s", jobID, job.RetryCount, job.MaxRetries, errorMsg)
	} else {
		log.Printf("[ERROR] Job %d failed permanently: %s", jobID, errorMsg)
	}

	return nil
}

func (s *service) ReleaseJob(ctx context.Context, jobID uint) error {
	if err := s.repo.ReleaseJob(ctx, jobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("releasing job: %w", err)
	}

	log.Printf("[DEBUG] Job %d released back to pending", jobID)

	return nil
}

func (s *service) FailJobWithDetails(ctx context.Context, jobID uint, errorType models.JobErrorType, errorCode, errorMsg, errorDetails string) error {
	if err := s.repo.FailJobWithDetails(ctx, jobID, errorType, errorCode, errorMsg, errorDetails); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("failing job with details: %w", err)
	}

	// Check if job is retryable
	job, _ := s.repo.GetJob(ctx, jobID)
	if job != nil && job.IsRetryable() {
		log.Printf("[ERROR] Job %d failed with %s error '%s' (retry %d/%d): %s",
			jobID, errorType, errorCode, job.RetryCount, job.MaxRetries, errorMsg)
	} else {
		log.Printf("[ERROR] Job %d failed permanently with %s error '%s': %s",
			jobID, errorType, errorCode, errorMsg)
	}

	return nil
}

func (s *service) RetryFailedJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting job for retry: %w", err)
	}

	// Only allow retry for failed or permanently failed jobs
	if job.Status != models.JobStatusFailed && job.Status != models.JobStatusPermanentlyFailed {
		return nil, fmt.Errorf("%w: job %d is %s (only 'failed' or 'permanently_failed' jobs can be retried)",
			ErrJobNotRetryable, jobID, job.Status)
	}

	// Reset the job to pending status for retry
	if err := s.repo.ResetJob(ctx, jobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resetting job for retry: %w", err)
	}

	// Get the updated job
	updatedJob, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("getting updated job after retry: %w", err)
	}

	log.Printf("[DEBUG] Job %d manually retried (was %s, now %s)", jobID, job.Status, updatedJob.Status)

	return updatedJob, nil
}

// CancelJob cancels a job that no worker has claimed yet
func (s *service) CancelJob(ctx context.Context, jobID uint) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !job.CanProcess() {
		return fmt.Errorf("%w: job %d is %s", ErrJobNotCancellable, jobID, job.Status)
	}

	if err := s.repo.CancelPendingJob(ctx, jobID); err != nil {
		if errors.Is(err, ErrJobNotCancellable) {
			return err
		}
		return fmt.Errorf("cancelling job: %w", err)
	}

	log.Printf("[DEBUG] Job %d cancelled", jobID)
	return nil
}

func (s *service) CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive")
	}

	cutoffTime := time.Now().AddDate(0, 0, -retentionDays)

	deleted, err := s.repo.DeleteOldJobs(ctx, cutoffTime)
	if err != nil {
		return 0, fmt.Errorf("cleaning up old jobs: %w", err)
	}

	if deleted > 0 {
		log.Printf("[DEBUG] Deleted %d old jobs (older than %d days)", deleted, retentionDays)
	}

	return deleted, nil
}
