package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Ping(ctx context.Context) error {
	return s.err
}

func setupEcho(checkers map[string]Checker) *echo.Echo {
	service := NewService(logger.NewAppLoggerWithWriter(io.Discard, "test"))
	for name, checker := range checkers {
		service.AddChecker(name, checker)
	}

	e := echo.New()
	RegisterEndpoints(e, "transactions-service", "1.2.3", service)
	return e
}

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.True(t, DefaultBuildInfo.ServerTime.IsZero())
}

func TestPingEndpoint(t *testing.T) {
	t.Setenv("GIT_COMMIT", "def456")

	e := setupEcho(nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "transactions-service", response.ServiceName)
	assert.Equal(t, "1.2.3", response.Version)
	assert.Equal(t, "def456", response.GitCommit)
	assert.Equal(t, "unknown", response.BuildTime)
	assert.NotEmpty(t, response.Hostname)
	assert.False(t, response.ServerTime.IsZero())
}

func TestLivenessEndpoint(t *testing.T) {
	e := setupEcho(map[string]Checker{"postgres": stubChecker{err: errors.New("down")}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// Liveness ignores dependencies
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive","service":"transactions-service"}`, rec.Body.String())
}

func TestReadinessEndpoint(t *testing.T) {
	t.Run("Healthy dependencies", func(t *testing.T) {
		e := setupEcho(map[string]Checker{"postgres": stubChecker{}})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var response Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	})

	t.Run("Unreachable database", func(t *testing.T) {
		e := setupEcho(map[string]Checker{"postgres": stubChecker{err: errors.New("connection refused")}})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var response Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "connection refused", response.Dependencies["postgres"].Error)
	})
}
