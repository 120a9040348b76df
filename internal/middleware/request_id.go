package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom devuelve el id que puso chimw.RequestID ("" si no pasó por ahí).
func RequestIDFrom(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
