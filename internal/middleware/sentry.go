package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
)

// Sentry deja un hub por request en el contexto. Si sentry.Init no se llamó
// el hub no tiene cliente y todo lo que se capture se descarta.
func Sentry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub := sentry.GetHubFromContext(r.Context())
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
		}
		hub.Scope().SetRequest(r)
		ctx := sentry.SetHubOnContext(r.Context(), hub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ReportError manda err a Sentry con el request_id como tag.
func ReportError(r *http.Request, err error) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(r)
		if rid := RequestIDFrom(r.Context()); rid != "" {
			scope.SetTag("request_id", rid)
		}
		hub.CaptureException(err)
	})
}
