package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/blog-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with the opaque internal failure envelope.
func Recovery(logger *slog.Logger) Middleware {
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
				requestID := ctxutil.RequestIDFromCtx(r.Context())
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", requestID),
				)
				writeError(w, http.StatusInternalServerError, InternalFailureMessage(requestID))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// InternalFailureMessage is the client-facing text of an unexpected failure.
// It carries only the request ID so the failure can be found in the logs.
func InternalFailureMessage(requestID string) string {
	return fmt.Sprintf("05X04 - internal server failure (ref %s)", requestID)
}
