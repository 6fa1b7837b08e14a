package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
	}{
		{path: "/health", wantStatus: http.StatusOK},
		{path: "/metrics", wantStatus: http.StatusOK},
		{path: "/ping", wantStatus: http.StatusOK},
		{path: "/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp()

	started, closed := false, false
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		started = true
		return nil
	}))
	a.SetClosers(closerFunc(func() error {
		closed = true
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	assert.True(t, started)

	require.NoError(t, a.Stop())
	assert.True(t, closed)
}

func TestApplication_StarterFailure(t *testing.T) {
	a := newTestApp()
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		return errors.New("boom")
	}))

	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "boom")
}
