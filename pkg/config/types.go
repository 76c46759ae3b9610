package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Processing   ProcessingConfig `mapstructure:"processing"`
	Cache        CacheConfig      `mapstructure:"cache"`
	Sessions     SessionsConfig   `mapstructure:"sessions"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	EnableWAL             bool          `mapstructure:"enable_wal"`
	EnableForeignKeys     bool          `mapstructure:"enable_foreign_keys"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// StorageConfig contains where uploaded videos and exports live
type StorageConfig struct {
	VideoDir      string `mapstructure:"video_dir"`
	ExportDir     string `mapstructure:"export_dir"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

// ProcessingConfig contains ffmpeg and export worker settings
type ProcessingConfig struct {
	Workers       int           `mapstructure:"workers"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	JobTimeout    time.Duration `mapstructure:"job_timeout"`
	FFmpegPath    string        `mapstructure:"ffmpeg_path"`
	FFprobePath   string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout time.Duration `mapstructure:"ffmpeg_timeout"`

	// Finished exports and their files are removed after ExportRetention
	ExportRetention time.Duration `mapstructure:"export_retention"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CacheConfig contains thumbnail cache settings
type CacheConfig struct {
	ThumbnailTTL    time.Duration `mapstructure:"thumbnail_ttl"`
	MaxSizeMB       int           `mapstructure:"max_size_mb"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// SessionsConfig contains editing session registry settings
type SessionsConfig struct {
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	MaxSessions     int           `mapstructure:"max_sessions"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
