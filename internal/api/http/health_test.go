package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveHealth(t *testing.T, p Pinger, method string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", p).RegisterRoutes(router)

	req, err := http.NewRequest(method, "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response HealthResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func TestHealthCheck(t *testing.T) {
	rr, response := serveHealth(t, pingerFunc(func(context.Context) error { return nil }), http.MethodGet)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "test-service", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "up", response.Backend)
}

func TestHealthCheckBackendDown(t *testing.T) {
	rr, response := serveHealth(t, pingerFunc(func(context.Context) error { return errors.New("refused") }), http.MethodGet)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "down", response.Backend)
}

func TestHealthCheckWithoutBackend(t *testing.T) {
	_, response := serveHealth(t, nil, http.MethodGet)
	assert.Equal(t, "disabled", response.Backend)
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr, _ := serveHealth(t, nil, http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
