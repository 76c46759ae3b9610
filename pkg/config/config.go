package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// ConfigPath is where Init looks for an optional settings file
const ConfigPath = "./config/settings.yaml"

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load(ConfigPath)
	})

	return initErr
}

// load reads defaults, the settings file at path and EDITOR_* environment
// overrides into the global viper instance
func load(path string) error {
	setDefaults()

	// Set up environment variable reading for overrides
	viper.SetEnvPrefix("EDITOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		log.Println("[WARN] No database path configured, videos and exports will not be persisted")
	}

	for _, key := range []string{"storage.video_dir", "storage.export_dir"} {
		if viper.GetString(key) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}

	if viper.GetInt64("storage.max_upload_size") <= 0 {
		return fmt.Errorf("invalid storage.max_upload_size: %d", viper.GetInt64("storage.max_upload_size"))
	}

	// Auto-correct invalid worker count
	if viper.GetInt("processing.workers") <= 0 {
		viper.Set("processing.workers", 2)
	}

	if viper.GetDuration("sessions.idle_timeout") <= 0 {
		viper.Set("sessions.idle_timeout", 30*time.Minute)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.VideoDir == "" || c.Storage.ExportDir == "" {
		return fmt.Errorf("storage directories must be set")
	}

	if c.Storage.MaxUploadSize <= 0 {
		return fmt.Errorf("invalid max upload size: %d", c.Storage.MaxUploadSize)
	}

	if c.Processing.Workers <= 0 {
		c.Processing.Workers = 2
	}

	if c.Sessions.IdleTimeout <= 0 {
		c.Sessions.IdleTimeout = 30 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 5*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/editor.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.enable_foreign_keys", true)
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.video_dir", "./data/videos")
	viper.SetDefault("storage.export_dir", "./data/exports")
	viper.SetDefault("storage.max_upload_size", int64(2<<30))

	// Processing defaults
	viper.SetDefault("processing.workers", 2)
	viper.SetDefault("processing.poll_interval", 2*time.Second)
	viper.SetDefault("processing.job_timeout", 30*time.Minute)
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")
	viper.SetDefault("processing.ffmpeg_timeout", 2*time.Minute)
	viper.SetDefault("processing.export_retention", 72*time.Hour)
	viper.SetDefault("processing.cleanup_interval", 1*time.Hour)

	// Cache defaults
	viper.SetDefault("cache.thumbnail_ttl", 1*time.Hour)
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.cleanup_interval", 5*time.Minute)

	// Session defaults
	viper.SetDefault("sessions.idle_timeout", 30*time.Minute)
	viper.SetDefault("sessions.cleanup_interval", 1*time.Minute)
	viper.SetDefault("sessions.max_sessions", 1000)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 20)
	viper.SetDefault("rate_limiting.burst", 40)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
