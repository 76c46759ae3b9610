package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobPruner is a mock implementation of JobPruner
type MockJobPruner struct {
	mock.Mock
}

func (m *MockJobPruner) CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

func writeFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestService_RunOnce(t *testing.T) {
	dir := t.TempDir()
	oldExport := writeFile(t, dir, "1-holiday_edited.mp4", 80*time.Hour)
	oldCutList := writeFile(t, dir, "1-holiday_edited.mp4.edl", 80*time.Hour)
	recent := writeFile(t, dir, "2-final.mp4", time.Hour)

	pruner := &MockJobPruner{}
	pruner.On("CleanupOldJobs", mock.Anything, 3).Return(int64(1), nil)

	svc := NewService(dir, pruner, 72*time.Hour, time.Hour)
	removed := svc.RunOnce(context.Background())

	assert.Equal(t, 2, removed)
	assert.NoFileExists(t, oldExport)
	assert.NoFileExists(t, oldCutList)
	assert.FileExists(t, recent)
	pruner.AssertExpectations(t)
}

func TestService_RunOnce_ShortRetentionKeepsOneDayOfJobs(t *testing.T) {
	pruner := &MockJobPruner{}
	pruner.On("CleanupOldJobs", mock.Anything, 1).Return(int64(0), nil)

	svc := NewService(t.TempDir(), pruner, 2*time.Hour, time.Hour)
	svc.RunOnce(context.Background())

	pruner.AssertExpectations(t)
}

func TestService_RunOnce_MissingDirectory(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "missing"), nil, time.Hour, time.Hour)
	assert.Equal(t, 0, svc.RunOnce(context.Background()))
}

func TestService_StartStop(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "3-old.mp4", 2*time.Hour)

	svc := NewService(dir, nil, time.Hour, 10*time.Millisecond)
	svc.Start(context.Background())
	svc.Stop()

	assert.NoFileExists(t, old)
}

func TestService_DisabledWithoutRetention(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "4-old.mp4", 1000*time.Hour)

	svc := NewService(dir, nil, 0, time.Hour)
	svc.Start(context.Background())
	svc.Stop()

	assert.FileExists(t, old)
}
