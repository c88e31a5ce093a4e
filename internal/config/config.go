package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Email     EmailConfig     `yaml:"email"`
	Images    ImagesConfig    `yaml:"images"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"5242880"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token signing and password hashing settings.
type AuthConfig struct {
	JWTSecret               string `yaml:"jwt_secret"                env:"AUTH_JWT_SECRET"                env-required:"true"`
	DefaultRole             string `yaml:"default_role"              env:"AUTH_DEFAULT_ROLE"              env-default:"author"`
	GeneratedPasswordLength int    `yaml:"generated_password_length" env:"AUTH_GENERATED_PASSWORD_LENGTH" env-default:"25"`
	Argon2MemoryKiB         uint32 `yaml:"argon2_memory_kib"         env:"AUTH_ARGON2_MEMORY_KIB"         env-default:"65536"`
	Argon2Iterations        uint32 `yaml:"argon2_iterations"         env:"AUTH_ARGON2_ITERATIONS"         env-default:"3"`
	Argon2Parallelism       uint8  `yaml:"argon2_parallelism"        env:"AUTH_ARGON2_PARALLELISM"        env-default:"2"`
}

// CacheConfig holds read-through cache settings.
type CacheConfig struct {
	Size       int           `yaml:"size"        env:"CACHE_SIZE"        env-default:"1024"`
	ContentTTL time.Duration `yaml:"content_ttl" env:"CACHE_CONTENT_TTL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig throttles the login endpoint per client IP.
type RateLimitConfig struct {
	LoginRPS   float64 `yaml:"login_rps"   env:"RATE_LIMIT_LOGIN_RPS"   env-default:"1"`
	LoginBurst int     `yaml:"login_burst" env:"RATE_LIMIT_LOGIN_BURST" env-default:"5"`
}

// SMTPConfig holds outbound mail server settings.
type SMTPConfig struct {
	Enabled  bool   `yaml:"enabled"  env:"SMTP_ENABLED"  env-default:"false"`
	Host     string `yaml:"host"     env:"SMTP_HOST"     env-default:"localhost"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"25"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

// EmailConfig holds the registration email template.
// Body may contain the {password} placeholder.
type EmailConfig struct {
	FromName  string `yaml:"from_name"  env:"EMAIL_FROM_NAME"  env-default:"Blog"`
	FromEmail string `yaml:"from_email" env:"EMAIL_FROM_EMAIL" env-default:"no-reply@blog.local"`
	Subject   string `yaml:"subject"    env:"EMAIL_SUBJECT"    env-default:"Welcome to the blog"`
	Body      string `yaml:"body"       env:"EMAIL_BODY"       env-default:"Your password is <strong>{password}</strong>"`
}

// ImagesConfig selects where profile images are stored.
type ImagesConfig struct {
	Driver      string `yaml:"driver"        env:"IMAGES_DRIVER"        env-default:"disk"`
	URLHost     string `yaml:"url_host"      env:"IMAGES_URL_HOST"      env-default:"http://localhost:8080/images/"`
	Dir         string `yaml:"dir"           env:"IMAGES_DIR"           env-default:"./data/images"`
	S3Bucket    string `yaml:"s3_bucket"     env:"IMAGES_S3_BUCKET"`
	S3Region    string `yaml:"s3_region"     env:"IMAGES_S3_REGION"     env-default:"us-east-1"`
	S3Endpoint  string `yaml:"s3_endpoint"   env:"IMAGES_S3_ENDPOINT"`
	S3AccessKey string `yaml:"s3_access_key" env:"IMAGES_S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"s3_secret_key" env:"IMAGES_S3_SECRET_KEY"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// SplitList splits a comma-separated setting into trimmed, non-empty parts.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
