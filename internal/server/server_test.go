package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/middleware"
	"github.com/pageza/pantrychef/backend/internal/service"
	"github.com/pageza/pantrychef/backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testServer(t *testing.T, limiter *middleware.RateLimiter) *Server {
	t.Helper()
	s := store.NewMemoryStore()
	_, err := store.Seed(context.Background(), s.Recipes)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	recipes := service.NewRecipeService(s)

	cfg := &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
	return New(cfg, Deps{
		Services: api.Services{
			Recipes:    recipes,
			Pantry:     service.NewPantryService(s.Pantry),
			Favorites:  service.NewFavoriteService(recipes, s.Favorites),
			Shopping:   service.NewShoppingService(s.Shopping),
			Generation: service.NewGenerationService(nil, s.Recipes, nil, m),
		},
		RateLimiter: limiter,
		Metrics:     m,
		Registry:    reg,
		Logger:      zerolog.Nop(),
	})
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew(t *testing.T) {
	srv := testServer(t, nil)
	require.NotNil(t, srv)

	w := get(srv, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = get(srv, "/api/recipes")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chicken Tikka Masala")

	w = get(srv, "/api/nothing-here")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t, nil)

	require.Equal(t, http.StatusOK, get(srv, "/api/recipes/1").Code)

	w := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, `route="/api/recipes/:id"`)
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGenerateBehindUnreachableLimiter(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	limiter := middleware.NewGenerationRateLimiter(client, 10, time.Hour)
	require.True(t, limiter.Enabled())
	srv := testServer(t, limiter)

	req := httptest.NewRequest(http.MethodPost, "/api/recipes/generate", strings.NewReader(`{"ingredients":["kale"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	// The limiter lets the request through and the missing generator
	// answers.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	srv := testServer(t, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
