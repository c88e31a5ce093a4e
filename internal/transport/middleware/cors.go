package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/blog-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// including preflight OPTIONS requests.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.SplitList(cfg.AllowedOrigins),
		AllowedMethods:   config.SplitList(cfg.AllowedMethods),
		AllowedHeaders:   config.SplitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
