package api

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
	"golang.org/x/time/rate"
)

// DefaultBodyLimit caps JSON request bodies
const DefaultBodyLimit = 1024 * 1024

// multipartOverhead is added to the upload limit for form boundaries and headers
const multipartOverhead = 1024 * 1024

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORS allows the browser client to call the API. An empty list or "*"
// allows every origin; otherwise the request origin is echoed when listed.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(origin, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Range")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Range, Accept-Ranges, Content-Disposition")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(DefaultBodyLimit)
}

// RequestSizeLimitWithSize caps request bodies at maxBytes. Zero or less
// means no limit.
func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && (c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// UploadSizeLimit caps multipart uploads of at most maxUpload file bytes
func UploadSizeLimit(maxUpload int64) gin.HandlerFunc {
	if maxUpload <= 0 {
		return RequestSizeLimitWithSize(0)
	}
	return RequestSizeLimitWithSize(maxUpload + multipartOverhead)
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps float64, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		// One limiter per route and client
		key := c.FullPath() + "|" + c.ClientIP()

		limiterInterface, loaded := rateLimiters.Load(key)
		if !loaded {
			limiterInterface, _ = rateLimiters.LoadOrStore(key, &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(rps), burst),
			})
		}

		cl := limiterInterface.(*clientLimiter)
		cl.touch(time.Now())

		if !cl.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
				Error:   string(apperrors.ErrCodeAPIRateLimit),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pruneRateLimiters(rateLimiters, time.Now(), 10*time.Minute)
		case <-cleanupStop:
			return
		}
	}
}

func pruneRateLimiters(rateLimiters *sync.Map, now time.Time, maxIdle time.Duration) int {
	removed := 0
	rateLimiters.Range(func(key, value interface{}) bool {
		cl := value.(*clientLimiter)
		if cl.idleSince(now) > maxIdle {
			rateLimiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
