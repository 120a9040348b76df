package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"hospital-intake/internal/platform/logger"

	"github.com/getsentry/sentry-go"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con stack, lo manda
// a Sentry y contesta 500.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var stack [4096]byte
				n := runtime.Stack(stack[:], false)

				log.Error("panic recovered", map[string]any{
					"request_id": RequestIDFrom(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprintf("%v", rec),
					"stack":      string(stack[:n]),
				})

				hub := sentry.GetHubFromContext(r.Context())
				if hub == nil {
					hub = sentry.CurrentHub()
				}
				hub.RecoverWithContext(r.Context(), rec)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
