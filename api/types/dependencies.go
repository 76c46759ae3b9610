package types

import (
	"github.com/killallgit/editor-api/internal/database"
	"github.com/killallgit/editor-api/internal/services/cache"
	"github.com/killallgit/editor-api/internal/services/exports"
	"github.com/killallgit/editor-api/internal/services/jobs"
	"github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/killallgit/editor-api/internal/services/videos"
	"github.com/killallgit/editor-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	VideoService  videos.Service
	ExportService exports.Service
	JobService    jobs.Service
	Sessions      *sessions.Registry
	WorkerPool    *workers.WorkerPool
	Cache         cache.StatsProvider
}
