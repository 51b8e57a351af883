package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeError(t, rec).Error)
}

func TestInit_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodGet, "/api/users/login", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	decodeError(t, rec)
}

func TestInit_Metrics(t *testing.T) {
	h := newTestHandler(t, newTestServices())
	// one request so that the request counters have a sample
	serve(t, h, http.MethodGet, "/api/version", "", nil)

	rec := serve(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wallet_keeper_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInit_WithoutMetrics(t *testing.T) {
	h := newTestHandler(t, newTestServices())
	h.metrics = nil

	rec := serve(t, h, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDIsEchoed(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "trace-123"})

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	svcs := newTestServices()
	svcs.UserService = &mockUserService{} // nil function fields panic when called
	h := newTestHandler(t, svcs)

	rec := serve(t, h, http.MethodGet, "/api/users/", "", adminKey())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
