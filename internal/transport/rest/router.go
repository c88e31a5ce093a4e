package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/blog-backend/internal/auth"
	"github.com/heartmarshall/blog-backend/internal/config"
	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/internal/transport/middleware"
)

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Logger       *slog.Logger
	Tokens       *auth.TokenManager
	CORS         config.CORSConfig
	LoginLimiter *middleware.RateLimiter
	MaxBodyBytes int64

	// Observer receives one observation per request; MetricsHandler
	// is served on /metrics. Both are optional.
	Observer       interface{ ObserveHTTP(method, route string, status int, elapsed time.Duration) }
	MetricsHandler http.Handler

	// ImagesDir is served under /images/ when set.
	ImagesDir string

	Health     *HealthHandler
	Accounts   *AccountHandler
	Categories *CategoryHandler
	Posts      *PostHandler
}

// NewRouter builds the HTTP handler tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	stack := []middleware.Middleware{
		chimw.RealIP,
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
	}
	if d.Observer != nil {
		stack = append(stack, middleware.Metrics(d.Observer))
	}
	stack = append(stack,
		middleware.CORS(d.CORS),
		middleware.Authenticate(d.Tokens, d.Logger),
		middleware.Logger(d.Logger),
		chimw.Compress(5, "application/json"),
	)
	if d.MaxBodyBytes > 0 {
		stack = append(stack, func(next http.Handler) http.Handler {
			return http.MaxBytesHandler(next, d.MaxBodyBytes)
		})
	}
	r.Use(middleware.Chain(stack...))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler)
	}
	if d.ImagesDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(d.ImagesDir))))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check", d.Health.Check)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", d.Accounts.Register)
			if d.LoginLimiter != nil {
				r.With(d.LoginLimiter.Limit()).Post("/login", d.Accounts.Login)
			} else {
				r.Post("/login", d.Accounts.Login)
			}
			r.With(middleware.RequireAuth).Post("/upload-image", d.Accounts.UploadImage)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", d.Categories.List)
			r.Get("/{id}", d.Categories.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAuthor))
				r.Post("/", d.Categories.Create)
				r.Put("/{id}", d.Categories.Update)
				r.Delete("/{id}", d.Categories.Delete)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", d.Posts.List)
			r.Get("/{id}", d.Posts.Get)
			r.Get("/category/{slug}", d.Posts.ListByCategory)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAuthor))
				r.Post("/", d.Posts.Create)
				r.Put("/{id}", d.Posts.Update)
				r.Delete("/{id}", d.Posts.Delete)
			})
		})
	})

	return r
}
