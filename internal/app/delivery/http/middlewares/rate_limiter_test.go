package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMutationRateLimit(t *testing.T) {
	middlewareInstance := &Middlewares{Log: zap.NewNop()}
	limiter := NewMutationRateLimiter(1, 2, time.Minute)

	handler := middlewareInstance.MutationRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Burst Allows Then Blocks", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code, "request %d should pass within the burst", i+1)
		}

		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code, "request beyond the burst should be throttled")
	})

	t.Run("Distinct Clients Do Not Share A Bucket", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = "203.0.113.9:4421"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "a fresh client should start with a full bucket")
	})
}
