package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings file",
			content: `
server:
  host: "127.0.0.1"
  port: 8081
storage:
  video_dir: "/srv/videos"
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, "/srv/videos", GetString("storage.video_dir"))
				assert.Equal(t, "./data/exports", GetString("storage.export_dir"))
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8081
`,
			env: map[string]string{"EDITOR_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "missing settings file uses defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, 30*time.Minute, GetDuration("sessions.idle_timeout"))
				assert.Equal(t, "ffprobe", GetString("processing.ffprobe_path"))
				assert.Equal(t, 72*time.Hour, GetDuration("processing.export_retention"))
				assert.Equal(t, time.Hour, GetDuration("processing.cleanup_interval"))
			},
		},
		{
			name: "invalid port",
			content: `
server:
  port: 70000
`,
			wantErr: true,
		},
		{
			name: "worker count auto-corrected",
			content: `
processing:
  workers: 0
`,
			check: func(t *testing.T) {
				assert.Equal(t, 2, GetInt("processing.workers"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.content != "" {
				path = writeSettings(t, tt.content)
			}

			err := load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	require.NoError(t, load(filepath.Join(t.TempDir(), "missing.yaml")))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data/videos", cfg.Storage.VideoDir)
	assert.Equal(t, time.Hour, cfg.Cache.ThumbnailTTL)
	assert.Equal(t, 2*time.Second, cfg.Processing.PollInterval)
	assert.True(t, cfg.RateLimiting.Enabled)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Host: "localhost", Port: 8080},
			Storage: StorageConfig{VideoDir: "./v", ExportDir: "./e", MaxUploadSize: 1024},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "missing video dir", mutate: func(c *Config) { c.Storage.VideoDir = "" }, wantErr: true},
		{name: "zero upload size", mutate: func(c *Config) { c.Storage.MaxUploadSize = 0 }, wantErr: true},
		{name: "empty database path allowed", mutate: func(c *Config) { c.Database.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 2, c.Processing.Workers)
			assert.Equal(t, 30*time.Minute, c.Sessions.IdleTimeout)
		})
	}
}
