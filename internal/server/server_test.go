package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"teamfortasks/internal/config"
	"teamfortasks/internal/middleware"
	"teamfortasks/internal/services"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	svc, err := services.New("")
	require.NoError(t, err)
	cfg := config.Config{Server: config.ServerConfig{
		Port:            "0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}}
	return New(cfg, zap.NewNop().Sugar(), svc)
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h := newServer(t).Handler()

	rec := serve(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health["status"])

	rec = serve(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Team for Tasks")
	require.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	rec = serve(t, h, "/api/pricing?billing=monthly")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"pro":249`)

	rec = serve(t, h, "/static/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "fade-in"))

	rec = serve(t, h, "/?team=nobody")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
