package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurelioguzman/tendermarket-backend/pkg/config"
	"github.com/aurelioguzman/tendermarket-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "controllers-test", Output: io.Discard})
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(testConfig())(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Tendermarket-Env"))
}

func TestHealthReady_AllDependenciesUp(t *testing.T) {
	rec := httptest.NewRecorder()
	handler := HealthReady(testConfig(), testLogger(), &stubPinger{}, &stubPinger{})
	handler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthReady_ReportsCombinedFailures(t *testing.T) {
	rec := httptest.NewRecorder()
	handler := HealthReady(testConfig(), testLogger(), &stubPinger{err: errors.New("db down")}, &stubPinger{err: errors.New("redis down")})
	handler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
