package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"campus-compliments/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, staticDir string) (*gin.Engine, *MockBuildingService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	buildings := new(MockBuildingService)
	r := NewRouter(Handlers{
		Health:      NewHealthHandler(nil),
		Compliments: NewComplimentHandler(new(MockComplimentService)),
		Feedback:    NewFeedbackHandler(new(MockFeedbackService)),
		Locate:      NewLocateHandler(new(MockLocateService)),
		Buildings:   NewBuildingHandler(buildings),
	}, RouterOptions{Logger: zerolog.Nop(), StaticDir: staticDir})
	return r, buildings
}

func TestNewRouter_Routes(t *testing.T) {
	r, buildings := newTestRouter(t, "")
	buildings.On("List").Return([]models.Building{})

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{name: "health", method: http.MethodGet, target: "/api/health", status: http.StatusOK},
		{name: "buildings", method: http.MethodGet, target: "/api/buildings", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "unknown api path", method: http.MethodGet, target: "/api/nope", status: http.StatusNotFound},
		{name: "no static dir", method: http.MethodGet, target: "/map", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewRouter_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	r, _ := newTestRouter(t, dir)

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{name: "asset", target: "/app.js", status: http.StatusOK, body: "console.log(1)"},
		{name: "client route", target: "/feed/today", status: http.StatusOK, body: "<html>app</html>"},
		{name: "api stays json", target: "/api/missing", status: http.StatusNotFound, body: `{"error":"not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
