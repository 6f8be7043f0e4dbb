package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		db         pinger
		wantStatus int
		wantBody   string
	}{
		{name: "journal disabled", db: nil, wantStatus: http.StatusOK, wantBody: "OK"},
		{
			name:       "database reachable",
			db:         pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name:       "database down",
			db:         pingFunc(func(context.Context) error { return assert.AnError }),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "DB ping failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, "/healthz", nil)

			healthHandler(log, tt.db).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSetupLogger(t *testing.T) {
	ctx := t.Context()

	assert.True(t, setupLogger(envLocal).Enabled(ctx, slog.LevelDebug))
	assert.False(t, setupLogger(envDev).Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger(envDev).Enabled(ctx, slog.LevelInfo))
	assert.False(t, setupLogger(envProd).Enabled(ctx, slog.LevelInfo))
	assert.True(t, setupLogger(envProd).Enabled(ctx, slog.LevelWarn))
	assert.False(t, setupLogger("unknown").Enabled(ctx, slog.LevelWarn))
}
