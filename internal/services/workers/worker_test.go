package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/killallgit/editor-api/internal/editor"
	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/exports"
	"github.com/killallgit/editor-api/internal/services/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockExporter is a mock implementation of Exporter
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, jobID uint, req exports.Request) (*exports.Result, error) {
	args := m.Called(ctx, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exports.Result), args.Error(1)
}

func setupJobService(t *testing.T) jobs.Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return jobs.NewService(jobs.NewRepository(db))
}

func enqueueExport(t *testing.T, svc jobs.Service) (*models.Job, exports.Request) {
	req := exports.Request{
		ExportRequest: editor.ExportRequest{
			Source:     editor.Source{ID: "vid-1", Name: "holiday.mov"},
			Segments:   []editor.Segment{{Start: 1, End: 2}},
			OutputName: "holiday_edited.mp4",
		},
		Duration: 10,
	}
	payload, err := models.NewPayload(req)
	require.NoError(t, err)
	job, err := svc.EnqueueJob(context.Background(), models.JobTypeExport, payload)
	require.NoError(t, err)
	return job, req
}

func TestWorker_ProcessesExport(t *testing.T) {
	ctx := context.Background()
	svc := setupJobService(t)
	job, req := enqueueExport(t, svc)

	exporter := &MockExporter{}
	exporter.On("Export", mock.Anything, job.ID, req).Return(&exports.Result{
		OutputPath:  "/exports/1-holiday_edited.mp4",
		CutListPath: "/exports/1-holiday_edited.mp4.edl",
		Size:        42,
		KeptRanges:  2,
	}, nil)

	w := NewWorker("worker-1", svc, time.Hour, time.Minute)
	w.RegisterProcessor(NewExportProcessor(svc, exporter))
	require.NoError(t, w.processNextJob(ctx))

	done, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
	path, ok := done.GetResultString(exports.ResultOutputPath)
	assert.True(t, ok)
	assert.Equal(t, "/exports/1-holiday_edited.mp4", path)
	name, _ := done.GetResultString(exports.ResultOutputName)
	assert.Equal(t, "holiday_edited.mp4", name)
	exporter.AssertExpectations(t)
}

func TestWorker_SourceMissingFailsPermanently(t *testing.T) {
	ctx := context.Background()
	svc := setupJobService(t)
	job, _ := enqueueExport(t, svc)

	exporter := &MockExporter{}
	exporter.On("Export", mock.Anything, job.ID, mock.Anything).
		Return(nil, errors.Join(exports.ErrSourceMissing, errors.New("deleted")))

	w := NewWorker("worker-1", svc, time.Hour, 0)
	w.RegisterProcessor(NewExportProcessor(svc, exporter))
	assert.Error(t, w.processNextJob(ctx))

	failed, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPermanentlyFailed, failed.Status)
	assert.Equal(t, string(models.ErrorTypeNotFound), failed.ErrorType)
	assert.Equal(t, "source_missing", failed.ErrorCode)
}

func TestWorker_WriteFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	svc := setupJobService(t)
	job, _ := enqueueExport(t, svc)

	exporter := &MockExporter{}
	exporter.On("Export", mock.Anything, job.ID, mock.Anything).Return(nil, errors.New("disk full"))

	w := NewWorker("worker-1", svc, time.Hour, 0)
	w.RegisterProcessor(NewExportProcessor(svc, exporter))
	assert.Error(t, w.processNextJob(ctx))

	failed, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, failed.Status)
	assert.Equal(t, "write_failed", failed.ErrorCode)
	assert.Equal(t, 1, failed.RetryCount)
}

func TestWorker_InvalidPayload(t *testing.T) {
	ctx := context.Background()
	svc := setupJobService(t)
	job, err := svc.EnqueueJob(ctx, models.JobTypeExport, models.JobPayload{"segments": "not a list"})
	require.NoError(t, err)

	exporter := &MockExporter{}
	w := NewWorker("worker-1", svc, time.Hour, 0)
	w.RegisterProcessor(NewExportProcessor(svc, exporter))
	assert.Error(t, w.processNextJob(ctx))

	failed, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "invalid_payload", failed.ErrorCode)
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_NoJobs(t *testing.T) {
	svc := setupJobService(t)
	w := NewWorker("worker-1", svc, time.Hour, 0)
	w.RegisterProcessor(NewExportProcessor(svc, &MockExporter{}))
	assert.NoError(t, w.processNextJob(context.Background()))
}

func TestWorker_NoProcessors(t *testing.T) {
	w := NewWorker("worker-1", setupJobService(t), time.Hour, 0)
	assert.Error(t, w.processNextJob(context.Background()))
}

func TestWorkerPool_StartStop(t *testing.T) {
	svc := setupJobService(t)
	pool := NewWorkerPool(svc, 2, 10*time.Millisecond, time.Minute)
	pool.RegisterProcessor(NewExportProcessor(svc, &MockExporter{}))
	assert.Equal(t, 2, pool.Size())

	require.NoError(t, pool.Start(context.Background()))
	assert.Error(t, pool.Start(context.Background()))
	pool.Stop()
	pool.Stop()
}

func TestWorkerPool_RunsQueuedExport(t *testing.T) {
	svc := setupJobService(t)
	job, req := enqueueExport(t, svc)

	exporter := &MockExporter{}
	exporter.On("Export", mock.Anything, job.ID, req).Return(&exports.Result{OutputPath: "/exports/out.mp4"}, nil)

	pool := NewWorkerPool(svc, 1, 5*time.Millisecond, time.Minute)
	pool.RegisterProcessor(NewExportProcessor(svc, exporter))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		current, err := svc.GetJob(context.Background(), job.ID)
		return err == nil && current.Status == models.JobStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)
}
