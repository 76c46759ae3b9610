package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/killallgit/editor-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, deps *types.Dependencies) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := NewServer("127.0.0.1:0")
	server.Configure(config.ServerConfig{ReadTimeout: 5 * time.Second}, config.SecurityConfig{EnableCORS: true})
	server.SetDependencies(deps)
	require.NoError(t, server.Initialize())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})
	return server
}

func TestServer_PublicRoutes(t *testing.T) {
	server := newTestServer(t, &types.Dependencies{})

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/health", http.StatusOK},
		{"/version", http.StatusOK},
		{"/docs", http.StatusMovedPermanently},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestServer_SessionRoutesWithoutStorage(t *testing.T) {
	server := newTestServer(t, &types.Dependencies{})

	// A registry is created when none is supplied
	require.NotNil(t, server.Dependencies().Sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://editor.example.com")
	server.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// Video and export routes are only mounted with their services
	w = httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ShutdownStopsSessions(t *testing.T) {
	registry := sessions.NewRegistry(sessions.Options{IdleTimeout: time.Minute, CleanupInterval: time.Second})
	server := newTestServer(t, &types.Dependencies{Sessions: registry})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	// Second shutdown is harmless
	assert.NoError(t, server.Shutdown(ctx))
}

func TestServer_Configure(t *testing.T) {
	server := NewServer(":0")
	server.Configure(config.ServerConfig{WriteTimeout: 10 * time.Minute, MaxHeaderBytes: 4096},
		config.SecurityConfig{EnableCORS: false})

	assert.Equal(t, 10*time.Minute, server.httpServer.WriteTimeout)
	assert.Equal(t, 30*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 4096, server.httpServer.MaxHeaderBytes)
	assert.False(t, server.enableCORS)
}
