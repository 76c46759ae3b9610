package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/killallgit/editor-api/internal/models"
	"github.com/killallgit/editor-api/internal/services/jobs"
)

// JobTypes lists every job type a processor may handle
var JobTypes = []models.JobType{
	models.JobTypeExport,
}

// JobProcessor defines the interface for processing different job types
type JobProcessor interface {
	ProcessJob(ctx context.Context, job *models.Job) error
	CanProcess(jobType models.JobType) bool
}

// Worker represents a background worker that processes jobs
type Worker struct {
	id           string
	jobService   jobs.Service
	processors   []JobProcessor
	stopChan     chan struct{}
	wg           sync.WaitGroup
	pollInterval time.Duration
	jobTimeout   time.Duration
}

// NewWorker creates a new worker instance. A zero jobTimeout leaves jobs
// unbounded.
func NewWorker(id string, jobService jobs.Service, pollInterval, jobTimeout time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Worker{
		id:           id,
		jobService:   jobService,
		processors:   make([]JobProcessor, 0),
		stopChan:     make(chan struct{}),
		pollInterval: pollInterval,
		jobTimeout:   jobTimeout,
	}
}

// RegisterProcessor registers a job processor
func (w *Worker) RegisterProcessor(processor JobProcessor) {
	w.processors = append(w.processors, processor)
}

// Start starts the worker in a goroutine
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop stops the worker gracefully
func (w *Worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log.Printf("[INFO] Worker %s starting", w.id)
	defer log.Printf("[INFO] Worker %s stopped", w.id)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			if err := w.processNextJob(ctx); err != nil {
				log.Printf("[ERROR] Worker %s: error processing job: %v", w.id, err)
			}
		}
	}
}

// supportedTypes collects the job types at least one processor handles
func (w *Worker) supportedTypes() []models.JobType {
	var supported []models.JobType
	for _, jobType := range JobTypes {
		for _, p := range w.processors {
			if p.CanProcess(jobType) {
				supported = append(supported, jobType)
				break
			}
		}
	}
	return supported
}

// processNextJob claims and processes the next available job
func (w *Worker) processNextJob(ctx context.Context) error {
	supportedTypes := w.supportedTypes()
	if len(supportedTypes) == 0 {
		return fmt.Errorf("no job processors registered")
	}

	job, err := w.jobService.ClaimNextJob(ctx, w.id, supportedTypes)
	if err != nil {
		if errors.Is(err, jobs.ErrNoJobsAvailable) {
			return nil
		}
		return fmt.Errorf("claiming job: %w", err)
	}
	if job == nil {
		return nil
	}

	log.Printf("[DEBUG] Worker %s claimed job %d (type: %s)", w.id, job.ID, job.Type)

	var processor JobProcessor
	for _, p := range w.processors {
		if p.CanProcess(job.Type) {
			processor = p
			break
		}
	}

	if processor == nil {
		if releaseErr := w.jobService.ReleaseJob(ctx, job.ID); releaseErr != nil {
			log.Printf("[WARN] Worker %s: failed to release job %d: %v", w.id, job.ID, releaseErr)
		}
		return fmt.Errorf("no processor found for job type %s", job.Type)
	}

	jobCtx := ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, w.jobTimeout)
		defer cancel()
	}

	err = processor.ProcessJob(jobCtx, job)
	if err != nil {
		var structuredErr *models.StructuredJobError
		if errors.As(err, &structuredErr) {
			failErr := w.jobService.FailJobWithDetails(ctx, job.ID, structuredErr.Type, structuredErr.Code, structuredErr.Message, structuredErr.Details)
			if failErr != nil {
				log.Printf("[ERROR] Worker %s: failed to mark job %d as failed: %v", w.id, job.ID, failErr)
			}
		} else {
			failErr := w.jobService.FailJob(ctx, job.ID, err)
			if failErr != nil {
				log.Printf("[ERROR] Worker %s: failed to mark job %d as failed: %v", w.id, job.ID, failErr)
			}
		}
		return fmt.Errorf("job processing failed: %w", err)
	}

	log.Printf("[DEBUG] Worker %s completed job %d", w.id, job.ID)
	return nil
}

// WorkerPool manages multiple workers
type WorkerPool struct {
	workers    []*Worker
	jobService jobs.Service
	mu         sync.RWMutex
	started    bool
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(jobService jobs.Service, workerCount int, pollInterval, jobTimeout time.Duration) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	pool := &WorkerPool{
		jobService: jobService,
		workers:    make([]*Worker, workerCount),
	}

	for i := 0; i < workerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i+1)
		pool.workers[i] = NewWorker(workerID, jobService, pollInterval, jobTimeout)
	}

	return pool
}

// Size returns the number of workers in the pool
func (p *WorkerPool) Size() int {
	return len(p.workers)
}

// Running returns how many workers are polling for jobs
func (p *WorkerPool) Running() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.started {
		return 0
	}
	return len(p.workers)
}

// RegisterProcessor registers a processor with all workers
func (p *WorkerPool) RegisterProcessor(processor JobProcessor) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, worker := range p.workers {
		worker.RegisterProcessor(processor)
	}
}

// Start starts all workers
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}

	log.Printf("[INFO] Starting worker pool with %d workers", len(p.workers))

	for _, worker := range p.workers {
		worker.Start(ctx)
	}

	p.started = true
	return nil
}

// Stop stops all workers gracefully
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	log.Printf("[INFO] Stopping worker pool")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.started = false
}
