package middlewares

import (
	"monteluz-service/internal/app/config"
	"monteluz-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := NewMiddlewares(zap.NewNop(), &config.InternalConfig{})

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		assert.True(t, ok, "request id should be set in context")
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Generates Request ID When Absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/ticket/42", nil)

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Propagates Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/appointments/ticket/42", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-request-id")

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-request-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLoggingPreservesStatusCode(t *testing.T) {
	middlewares := NewMiddlewares(zap.NewNop(), &config.InternalConfig{})

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest("GET", "/api/appointments/ticket/9999", nil)
	rr := httptest.NewRecorder()
	middlewares.Logging(testHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
