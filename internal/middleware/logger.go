package middleware

import (
	"net/http"
	"strings"
	"time"

	"hospital-intake/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger escribe una línea por request con status y latencia.
// Los 5xx van como error, los 4xx como warn.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/swagger/") {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"request_id": RequestIDFrom(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"latency":    time.Since(start).String(),
				"remote_ip":  r.RemoteAddr,
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
