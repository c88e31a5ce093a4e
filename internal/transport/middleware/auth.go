package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/blog-backend/internal/auth"
	"github.com/heartmarshall/blog-backend/pkg/ctxutil"
)

const (
	msgAuthRequired = "authentication required"
	msgForbidden    = "you do not have permission to perform this action"
)

type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate resolves a bearer token into the request subject and roles.
// Requests without a token, or with one that does not verify, continue
// anonymously; protected routes reject them through RequireAuth.
func Authenticate(verifier tokenVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "bearer token rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithSubject(r.Context(), claims.Subject, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.SubjectFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, msgAuthRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and callers lacking role
// with 403.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ctxutil.HasRole(r.Context(), role) {
				writeError(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
