package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/database"
	"github.com/killallgit/editor-api/internal/services/cache"
	"github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		expectedBody   string
		expectedDB     string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedDB:     "healthy",
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedDB:     "not configured",
		},
		{
			name: "nil dependencies",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
			expectedDB:     "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "unhealthy",
			expectedDB:     "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response.Status)
			assert.Equal(t, tt.expectedDB, response.Database["status"])
			assert.NotEmpty(t, response.Timestamp)
		})
	}
}

func TestGet_ReportsSessionsAndCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := sessions.NewRegistry(sessions.Options{})
	t.Cleanup(registry.Stop)
	_, err := registry.Create()
	require.NoError(t, err)

	thumbs := cache.NewMemoryCache(1, 0)
	t.Cleanup(thumbs.Stop)

	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{Sessions: registry, Cache: thumbs})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Sessions)
	assert.Equal(t, 0, response.Workers)
	assert.Equal(t, int64(1024*1024), response.Cache["max_size"])
}
