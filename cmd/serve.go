package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/killallgit/editor-api/api"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/api/version"
	"github.com/killallgit/editor-api/internal/database"
	"github.com/killallgit/editor-api/internal/services/cache"
	"github.com/killallgit/editor-api/internal/services/cleanup"
	"github.com/killallgit/editor-api/internal/services/exports"
	"github.com/killallgit/editor-api/internal/services/jobs"
	"github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/killallgit/editor-api/internal/services/storage"
	"github.com/killallgit/editor-api/internal/services/videos"
	"github.com/killallgit/editor-api/internal/services/workers"
	"github.com/killallgit/editor-api/pkg/config"
	"github.com/killallgit/editor-api/pkg/ffmpeg"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Video Editor API server with the configured settings.

The server hosts editing sessions, the video library and the export
workers until it receives SIGINT or SIGTERM.

Example:
  editor-api serve
  editor-api serve --port 9090
  editor-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	version.SetBuild(Version, GitCommit)

	app, err := newApplication(cfg)
	if err != nil {
		return err
	}
	defer app.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.run(ctx)
}

// application owns every long-lived component of the server
type application struct {
	cfg     *config.Config
	db      *database.DB
	cache   *cache.MemoryCache
	pool    *workers.WorkerPool
	cleanup *cleanup.Service
	server  *api.Server
}

// newApplication opens the database, builds the services and wires them into
// the HTTP server. Nothing is started yet.
func newApplication(cfg *config.Config) (*application, error) {
	db, err := database.Open(cfg.Database.Path, database.OptionsFromConfig(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	app := &application{cfg: cfg, db: db}
	if err := app.wire(); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

func (a *application) wire() error {
	cfg := a.cfg

	videoStorage, err := storage.NewFilesystemStorage(cfg.Storage.VideoDir)
	if err != nil {
		return fmt.Errorf("failed to initialize video storage: %w", err)
	}
	exportStorage, err := storage.NewFilesystemStorage(cfg.Storage.ExportDir)
	if err != nil {
		return fmt.Errorf("failed to initialize export storage: %w", err)
	}

	a.cache = cache.NewMemoryCache(int64(cfg.Cache.MaxSizeMB), cfg.Cache.CleanupInterval)

	var prober videos.Prober
	ff := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
	if err := ff.ValidateBinaries(); err != nil {
		log.Printf("[WARN] ffmpeg unavailable, uploads will not be probed and thumbnails are disabled: %v", err)
	} else {
		prober = ff
	}

	videoService := videos.NewService(
		videos.NewRepository(a.db.DB),
		videoStorage,
		prober,
		a.cache,
		videos.Options{
			MaxUploadSize: cfg.Storage.MaxUploadSize,
			ThumbnailTTL:  cfg.Cache.ThumbnailTTL,
		},
	)

	jobService := jobs.NewService(jobs.NewRepository(a.db.DB))
	exportService := exports.NewService(jobService, exportStorage)

	a.pool = workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval, cfg.Processing.JobTimeout)
	a.pool.RegisterProcessor(workers.NewExportProcessor(jobService, exports.NewExporter(videoService, exportStorage)))

	a.cleanup = cleanup.NewService(cfg.Storage.ExportDir, jobService, cfg.Processing.ExportRetention, cfg.Processing.CleanupInterval)

	registry := sessions.NewRegistry(sessions.Options{
		IdleTimeout:     cfg.Sessions.IdleTimeout,
		CleanupInterval: cfg.Sessions.CleanupInterval,
		MaxSessions:     cfg.Sessions.MaxSessions,
	})

	a.server = api.NewServer(net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)))
	a.server.Configure(cfg.Server, cfg.Security)
	a.server.SetDatabase(a.db)
	a.server.SetDependencies(&types.Dependencies{
		VideoService:  videoService,
		ExportService: exportService,
		JobService:    jobService,
		Sessions:      registry,
		WorkerPool:    a.pool,
		Cache:         a.cache,
	})

	if err := a.server.Initialize(); err != nil {
		registry.Stop()
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	return nil
}

// run starts the workers and the HTTP server and blocks until ctx is done or
// the server fails
func (a *application) run(ctx context.Context) error {
	if err := a.pool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	a.cleanup.Start(ctx)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Video Editor API listening on %s:%d", a.cfg.Server.Host, a.cfg.Server.Port)

	var runErr error
	select {
	case <-ctx.Done():
		log.Println("[INFO] Shutting down server...")
	case runErr = <-serverErr:
		log.Printf("[ERROR] %v", runErr)
	}

	shutdownTimeout := a.cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		if runErr == nil {
			runErr = err
		}
	}
	a.pool.Stop()
	a.cleanup.Stop()

	if runErr == nil {
		log.Println("[INFO] Server gracefully stopped")
	}
	return runErr
}

// close releases resources that outlive run
func (a *application) close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = a.server.Shutdown(ctx)
		cancel()
	}
	if a.cache != nil {
		a.cache.Stop()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	}
}
