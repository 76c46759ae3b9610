package videos

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/cache"
	"github.com/killallgit/editor-api/internal/services/storage"
	"github.com/killallgit/editor-api/pkg/ffmpeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockProber is a mock implementation of Prober
type MockProber struct {
	mock.Mock
}

func (m *MockProber) GetMetadata(ctx context.Context, filePath string) (*ffmpeg.VideoMetadata, error) {
	args := m.Called(ctx, filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ffmpeg.VideoMetadata), args.Error(1)
}

func (m *MockProber) ExtractThumbnail(ctx context.Context, filePath string, opts ffmpeg.ThumbnailOptions) ([]byte, error) {
	args := m.Called(ctx, filePath, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type testEnv struct {
	svc     Service
	repo    Repository
	storage *storage.FilesystemStorage
	prober  *MockProber
	cache   *cache.MemoryCache
}

func setupTestEnv(t *testing.T, opts Options) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Video{}))

	backend, err := storage.NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	thumbs := cache.NewMemoryCache(1, time.Hour)
	t.Cleanup(thumbs.Stop)

	prober := &MockProber{}
	repo := NewRepository(db)
	return &testEnv{
		svc:     NewService(repo, backend, prober, thumbs, opts),
		repo:    repo,
		storage: backend,
		prober:  prober,
		cache:   thumbs,
	}
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t, Options{MaxUploadSize: 1024})

	meta := &ffmpeg.VideoMetadata{Duration: 12.5, Width: 1280, Height: 720, VideoCodec: "h264"}
	env.prober.On("GetMetadata", mock.Anything, mock.AnythingOfType("string")).Return(meta, nil)

	video, err := env.svc.Upload(ctx, UploadInput{
		Name:        "holiday.mov",
		ContentType: "video/quicktime",
		Data:        strings.NewReader("not really a movie"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, video.UUID)
	assert.Equal(t, "holiday.mov", video.Name)
	assert.Equal(t, int64(len("not really a movie")), video.Size)
	assert.True(t, video.Probed)
	assert.Equal(t, 12.5, video.Duration)

	stored, err := env.repo.GetByUUID(ctx, video.UUID)
	require.NoError(t, err)
	assert.Equal(t, 1280, stored.Width)
	assert.True(t, stored.Probed)
	assert.True(t, strings.HasPrefix(stored.StoragePath, env.storage.Root()))

	content, err := os.ReadFile(stored.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "not really a movie", string(content))
	env.prober.AssertExpectations(t)
}

func TestService_Upload_ProbeFailureKeepsVideo(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t, Options{})
	env.prober.On("GetMetadata", mock.Anything, mock.Anything).Return(nil, ffmpeg.ErrInvalidVideoFile)

	video, err := env.svc.Upload(ctx, UploadInput{Name: "clip.mp4", ContentType: "video/mp4", Data: strings.NewReader("x")})
	require.NoError(t, err)
	assert.False(t, video.Probed)

	_, err = env.repo.GetByUUID(ctx, video.UUID)
	assert.NoError(t, err)
}

func TestService_Upload_RejectsNonVideo(t *testing.T) {
	env := setupTestEnv(t, Options{})

	_, err := env.svc.Upload(context.Background(), UploadInput{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Data:        strings.NewReader("hello"),
	})
	assert.ErrorIs(t, err, ErrNotAVideo)

	entries, err := os.ReadDir(env.storage.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
	env.prober.AssertNotCalled(t, "GetMetadata", mock.Anything, mock.Anything)
}

func TestService_Upload_TooLarge(t *testing.T) {
	env := setupTestEnv(t, Options{MaxUploadSize: 4})

	_, err := env.svc.Upload(context.Background(), UploadInput{
		Name:        "big.mp4",
		ContentType: "video/mp4",
		Data:        strings.NewReader("0123456789"),
	})
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(env.storage.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_Thumbnail_Cached(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t, Options{ThumbnailTTL: time.Minute})
	env.prober.On("GetMetadata", mock.Anything, mock.Anything).Return(nil, errors.New("no probe"))

	video, err := env.svc.Upload(ctx, UploadInput{Name: "a.mp4", ContentType: "video/mp4", Data: strings.NewReader("x")})
	require.NoError(t, err)

	env.prober.On("ExtractThumbnail", mock.Anything, mock.Anything, ffmpeg.DefaultThumbnailOptions()).
		Return([]byte{0xff, 0xd8, 0xff}, nil).Once()

	first, err := env.svc.Thumbnail(ctx, video.UUID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,/9j/", first)

	second, err := env.svc.Thumbnail(ctx, video.UUID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, env.cache.Has(ctx, "thumb:"+video.UUID))
	env.prober.AssertNumberOfCalls(t, "ExtractThumbnail", 1)
}

func TestService_Thumbnail_NotFound(t *testing.T) {
	env := setupTestEnv(t, Options{})
	_, err := env.svc.Thumbnail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestService_OpenAndDelete(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t, Options{})
	env.prober.On("GetMetadata", mock.Anything, mock.Anything).Return(nil, errors.New("no probe"))

	video, err := env.svc.Upload(ctx, UploadInput{Name: "a.mp4", ContentType: "video/mp4", Data: strings.NewReader("frames")})
	require.NoError(t, err)

	rec, file, err := env.svc.Open(ctx, video.UUID)
	require.NoError(t, err)
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	assert.Equal(t, "frames", string(body))
	assert.Equal(t, video.UUID, rec.UUID)

	require.NoError(t, env.cache.Set(ctx, "thumb:"+video.UUID, []byte("jpeg"), time.Minute))
	require.NoError(t, env.svc.Delete(ctx, video.UUID))

	_, err = env.svc.Get(ctx, video.UUID)
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, statErr := os.Stat(rec.StoragePath)
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, env.cache.Has(ctx, "thumb:"+video.UUID))

	assert.ErrorIs(t, env.svc.Delete(ctx, video.UUID), ErrVideoNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t, Options{})
	env.prober.On("GetMetadata", mock.Anything, mock.Anything).Return(nil, errors.New("no probe"))

	for _, name := range []string{"a.mp4", "b.mp4", "c.mp4"} {
		_, err := env.svc.Upload(ctx, UploadInput{Name: name, ContentType: "video/mp4", Data: strings.NewReader(name)})
		require.NoError(t, err)
	}

	page, total, err := env.svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)

	page, _, err = env.svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
