package database

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database", dbPath: filepath.Join(t.TempDir(), "nested", "test.db")},
		{name: "empty path creates in-memory database", dbPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck())
		})
	}
}

func TestOpen_FileWithWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.db")
	conn, err := Open(path, Options{EnableWAL: true, EnableForeignKeys: true, MaxOpenConns: 4})
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.DB.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)

	sqlDB, err := conn.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
}

func TestOpen_InMemorySharedAcrossGoroutines(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Migrate())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			video := &models.Video{Name: "a.mp4", ContentType: "video/mp4", StoragePath: "/a"}
			assert.NoError(t, conn.DB.Create(video).Error)
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, conn.DB.Model(&models.Video{}).Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestDB_Close(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)

	assert.NoError(t, conn.Close())
	assert.Error(t, conn.HealthCheck(), "HealthCheck should fail after database is closed")
}

func TestDB_HealthCheckNil(t *testing.T) {
	var conn *DB
	assert.Error(t, conn.HealthCheck())
}

func TestDB_Migrate(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Migrate())

	for _, table := range []string{"videos", "jobs"} {
		var count int64
		err := conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count).Error
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count, "table %s should exist", table)
	}
}

func TestDB_Transaction(t *testing.T) {
	conn, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Migrate())

	err = conn.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Job{Type: models.JobTypeExport, MaxRetries: 1}).Error; err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	assert.Error(t, err)

	var count int64
	conn.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestInitializeWithMigrations(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr string
	}{
		{
			name: "in-memory database",
			setup: func() {
				viper.Set("database.path", ":memory:")
			},
		},
		{
			name: "file database",
			setup: func() {
				viper.Set("database.path", filepath.Join(t.TempDir(), "editor.db"))
				viper.Set("database.enable_wal", true)
			},
		},
		{
			name:    "missing path",
			setup:   func() {},
			wantErr: "database path is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			tt.setup()

			db, err := InitializeWithMigrations()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, db)
				return
			}
			require.NoError(t, err)
			defer db.Close()
			assert.True(t, db.Migrator().HasTable(&models.Video{}))
		})
	}
}
