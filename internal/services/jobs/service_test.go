package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return NewService(NewRepository(db))
}

func TestService_EnqueueAndClaim(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	low, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{"video_id": "a"}, WithCreatedBy("session-1"))
	require.NoError(t, err)
	high, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{"video_id": "b"}, WithPriority(5))
	require.NoError(t, err)

	claimed, err := svc.ClaimNextJob(ctx, "worker-1", []models.JobType{models.JobTypeExport})
	require.NoError(t, err)
	assert.Equal(t, high.ID, claimed.ID)
	assert.Equal(t, models.JobStatusProcessing, claimed.Status)
	assert.Equal(t, "worker-1", claimed.WorkerID)

	claimed, err = svc.ClaimNextJob(ctx, "worker-2", []models.JobType{models.JobTypeExport})
	require.NoError(t, err)
	assert.Equal(t, low.ID, claimed.ID)

	_, err = svc.ClaimNextJob(ctx, "worker-1", []models.JobType{models.JobTypeExport})
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestService_CompleteJob(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	job, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{})
	require.NoError(t, err)
	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProgress(ctx, job.ID, 50))
	require.NoError(t, svc.CompleteJob(ctx, job.ID, models.JobResult{"output_path": "/tmp/out.mp4"}))

	loaded, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, loaded.Status)
	assert.Equal(t, 100, loaded.Progress)
	path, ok := loaded.GetResultString("output_path")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/out.mp4", path)
}

func TestService_FailJobRetriesThenGivesUp(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	job, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{}, WithMaxRetries(2))
	require.NoError(t, err)

	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	require.NoError(t, svc.FailJob(ctx, job.ID, errors.New("disk full")))

	failed, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, failed.Status)

	retried, err := svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, retried.RetryCount)

	require.NoError(t, svc.FailJobWithDetails(ctx, job.ID, models.ErrorTypeStorage, "write_failed", "disk full", ""))
	failed, err = svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPermanentlyFailed, failed.Status)

	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	reset, err := svc.RetryFailedJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, reset.Status)
	assert.Equal(t, 0, reset.RetryCount)

	_, err = svc.RetryFailedJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotRetryable)
}

func TestService_CancelJob(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	pending, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{})
	require.NoError(t, err)
	require.NoError(t, svc.CancelJob(ctx, pending.ID))

	cancelled, err := svc.GetJob(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, cancelled.Status)

	running, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{})
	require.NoError(t, err)
	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.CancelJob(ctx, running.ID), ErrJobNotCancellable)

	assert.ErrorIs(t, svc.CancelJob(ctx, 9999), ErrJobNotFound)
}

func TestService_ListJobsByCreator(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{}, WithCreatedBy("session-a"))
		require.NoError(t, err)
	}
	_, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{}, WithCreatedBy("session-b"))
	require.NoError(t, err)

	jobs, err := svc.ListJobsByCreator(ctx, models.JobTypeExport, "session-a", 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Greater(t, jobs[0].ID, jobs[2].ID, "newest first")

	jobs, err = svc.ListJobsByCreator(ctx, models.JobTypeExport, "session-a", 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestService_CleanupOldJobs(t *testing.T) {
	svc := setupTestService(t)
	_, err := svc.CleanupOldJobs(context.Background(), 0)
	assert.Error(t, err)

	deleted, err := svc.CleanupOldJobs(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestService_FailJobWithDetails_NotFoundIsPermanent(t *testing.T) {
	ctx := context.Background()
	svc := setupTestService(t)

	job, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{}, WithMaxRetries(5))
	require.NoError(t, err)
	_, err = svc.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.FailJobWithDetails(ctx, job.ID, models.ErrorTypeNotFound, "source_missing", "video deleted", ""))

	failed, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPermanentlyFailed, failed.Status)
	assert.Equal(t, "source_missing", failed.ErrorCode)
	assert.NotNil(t, failed.CompletedAt)
}
