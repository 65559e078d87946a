package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/CreativeUnicorns/switcherprefs"
)

// LoggerMiddleware logs every request with its status, size and latency.
// Server errors are logged at Warn, everything else at Info.
func LoggerMiddleware(logger switcherprefs.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				args := []interface{}{
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"latency_ms", float64(time.Since(start).Microseconds()) / 1000.0,
					"request_id", middleware.GetReqID(r.Context()),
				}
				if ww.Status() >= http.StatusInternalServerError {
					logger.Warn("Request failed", args...)
					return
				}
				logger.Info("Served request", args...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
