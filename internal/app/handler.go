package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/blog-backend/internal/adapter/imagestore"
	"github.com/heartmarshall/blog-backend/internal/adapter/mail"
	"github.com/heartmarshall/blog-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/blog-backend/internal/adapter/postgres/category"
	postrepo "github.com/heartmarshall/blog-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/blog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/blog-backend/internal/auth"
	"github.com/heartmarshall/blog-backend/internal/cache"
	"github.com/heartmarshall/blog-backend/internal/config"
	"github.com/heartmarshall/blog-backend/internal/metrics"
	"github.com/heartmarshall/blog-backend/internal/service/account"
	"github.com/heartmarshall/blog-backend/internal/service/category"
	"github.com/heartmarshall/blog-backend/internal/service/post"
	"github.com/heartmarshall/blog-backend/internal/transport/middleware"
	"github.com/heartmarshall/blog-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and transport on top of pool.
// The returned cleanup stops background work started here.
func NewHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	contentCache, err := cache.New(cfg.Cache.Size, cache.WithRecorder(m))
	if err != nil {
		return nil, nil, fmt.Errorf("content cache: %w", err)
	}

	tokens, err := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), clockwork.NewRealClock())
	if err != nil {
		return nil, nil, fmt.Errorf("token manager: %w", err)
	}
	hasher := auth.NewPasswordHasher(auth.Argon2Params{
		MemoryKiB:   cfg.Auth.Argon2MemoryKiB,
		Iterations:  cfg.Auth.Argon2Iterations,
		Parallelism: cfg.Auth.Argon2Parallelism,
	})

	images, err := imagestore.New(ctx, cfg.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("image store: %w", err)
	}
	mailer := mail.New(cfg.SMTP, cfg.Email, logger)

	// Repositories
	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	posts := postrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	accountSvc := account.NewService(logger, users, tx, hasher, tokens, mailer, images, cfg.Auth, cfg.Email, cfg.Images)
	categorySvc := category.NewService(logger, categories, contentCache, cfg.Cache.ContentTTL)
	postSvc := post.NewService(logger, posts, categories, users, clockwork.NewRealClock())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, time.Minute)

	deps := rest.RouterDeps{
		Logger:         logger,
		Tokens:         tokens,
		CORS:           cfg.CORS,
		LoginLimiter:   limiter,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Observer:       m,
		MetricsHandler: metrics.Handler(reg),
		Health:         rest.NewHealthHandler(pool, Version),
		Accounts:       rest.NewAccountHandler(accountSvc, logger),
		Categories:     rest.NewCategoryHandler(categorySvc, logger),
		Posts:          rest.NewPostHandler(postSvc, logger),
	}
	if disk, ok := images.(*imagestore.Disk); ok {
		deps.ImagesDir = disk.Dir()
	}

	return rest.NewRouter(deps), limiter.Stop, nil
}
