package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelogues/internal/catalog"
	"travelogues/internal/config"
	"travelogues/internal/platform/sqlite"
	"travelogues/internal/web"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	path := filepath.Join(t.TempDir(), "archive.db")
	rw, err := sqlite.Open(ctx, path, sqlite.Options{})
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(ctx, rw))
	require.NoError(t, sqlite.Seed(ctx, rw, sqlite.SampleArchive()))
	require.NoError(t, rw.Close())

	db, err := sqlite.Open(ctx, path, sqlite.Options{ReadOnly: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := catalog.NewService(catalog.NewSQLiteRepo(db))
	pages, err := web.NewHandler(svc)
	require.NoError(t, err)

	cfg := &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:    []string{"*"},
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
		},
	}
	return NewRouter(ctx, cfg, svc, pages)
}

func TestRouting(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		contentType string
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK, ""},
		{"ready", http.MethodGet, "/readyz", http.StatusOK, ""},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, ""},
		{"publication", http.MethodGet, "/api/publications/1", http.StatusOK, "application/json"},
		{"missing publication", http.MethodGet, "/api/publications/999", http.StatusNotFound, "application/json"},
		{"publications", http.MethodGet, "/api/publications", http.StatusOK, "application/json"},
		{"publications trailing slash", http.MethodGet, "/api/publications/", http.StatusOK, "application/json"},
		{"decades", http.MethodGet, "/api/decades", http.StatusOK, "application/json"},
		{"travelers", http.MethodGet, "/api/travelers/", http.StatusOK, "application/json"},
		{"search page data", http.MethodGet, "/api/searchpagedata", http.StatusOK, "application/json"},
		{"search", http.MethodGet, "/api/search?title=Nile", http.StatusOK, "application/json"},
		{"bad search", http.MethodGet, "/api/search?traveldate-max=x", http.StatusBadRequest, "application/json"},
		{"unknown api route", http.MethodGet, "/api/nothing", http.StatusNotFound, "application/json"},
		{"home page", http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8"},
		{"publications page", http.MethodGet, "/publications-list", http.StatusOK, "text/html; charset=utf-8"},
		{"travelers page", http.MethodGet, "/travelers-list", http.StatusOK, "text/html; charset=utf-8"},
		{"decades page", http.MethodGet, "/decades-list", http.StatusOK, "text/html; charset=utf-8"},
		{"publication page", http.MethodGet, "/publication?id=1", http.StatusOK, "text/html; charset=utf-8"},
		{"search page", http.MethodGet, "/search?title=Nile", http.StatusOK, "text/html; charset=utf-8"},
		{"stylesheet", http.MethodGet, "/css/style.css", http.StatusOK, "text/css; charset=utf-8"},
		{"unknown page", http.MethodGet, "/nowhere", http.StatusNotFound, "text/html; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			}
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouting_NotFoundBody(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/publications/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":404,"message":"Publication ID abc doesn't exist"}`, w.Body.String())
}
