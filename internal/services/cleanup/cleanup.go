package cleanup

import (
	"context"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JobPruner deletes finished job records
type JobPruner interface {
	CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error)
}

// Service removes export files and export job records once they are older
// than the retention period
type Service struct {
	exportDir       string
	jobs            JobPruner
	maxAge          time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a new cleanup service. jobs may be nil to only prune
// files.
func NewService(exportDir string, jobs JobPruner, maxAge, cleanupInterval time.Duration) *Service {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	return &Service{
		exportDir:       exportDir,
		jobs:            jobs,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		now:             time.Now,
	}
}

// Start runs a cleanup pass now and then every cleanup interval until ctx
// is done or Stop is called
func (s *Service) Start(ctx context.Context) {
	if s.maxAge <= 0 {
		log.Printf("[INFO] Export cleanup disabled (no retention configured)")
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	// Run initial cleanup
	s.RunOnce(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-ctx.Done():
				log.Println("[INFO] Cleanup service stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Cleanup service started (interval: %v, max age: %v)", s.cleanupInterval, s.maxAge)
}

// Stop stops the cleanup service and waits for a running pass to finish
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// RunOnce performs a single cleanup pass and returns how many files it removed
func (s *Service) RunOnce(ctx context.Context) int {
	removed := s.removeOldFiles()

	if s.jobs != nil {
		days := int(math.Ceil(s.maxAge.Hours() / 24))
		if days < 1 {
			days = 1
		}
		if _, err := s.jobs.CleanupOldJobs(ctx, days); err != nil {
			log.Printf("[WARN] Failed to prune old export jobs: %v", err)
		}
	}
	return removed
}

// removeOldFiles deletes export outputs and cut lists past the retention period
func (s *Service) removeOldFiles() int {
	if _, err := os.Stat(s.exportDir); os.IsNotExist(err) {
		return 0
	}

	removed := 0
	now := s.now()
	err := filepath.Walk(s.exportDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files with errors
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		if now.Sub(info.ModTime()) > s.maxAge {
			log.Printf("[DEBUG] Removing expired export file: %s", path)
			if err := os.Remove(path); err != nil {
				log.Printf("[WARN] Failed to remove export file %s: %v", path, err)
				return nil
			}
			removed++
		}

		return nil
	})

	if err != nil {
		log.Printf("[ERROR] Cleanup walk error: %v", err)
	}
	return removed
}
