package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"avocado-hub-backend/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogging tags every request with an id and logs its outcome.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.WithRequest(requestID, r.Method, r.URL.Path).Info("Request handled",
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
