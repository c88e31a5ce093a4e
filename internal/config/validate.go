package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const minJWTSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLength, len(c.Auth.JWTSecret))
	}
	if c.Auth.GeneratedPasswordLength < 12 {
		return fmt.Errorf("auth.generated_password_length must be >= 12 (got %d)", c.Auth.GeneratedPasswordLength)
	}
	if strings.TrimSpace(c.Auth.DefaultRole) == "" {
		return fmt.Errorf("auth.default_role must not be empty")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Cache.ContentTTL < 0 {
		return fmt.Errorf("cache.content_ttl must be >= 0 (got %s)", c.Cache.ContentTTL)
	}

	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		return fmt.Errorf("rate_limit: login_rps and login_burst must be > 0")
	}

	if err := c.Images.validate(); err != nil {
		return fmt.Errorf("images: %w", err)
	}

	if c.SMTP.Enabled && c.SMTP.Host == "" {
		return fmt.Errorf("smtp.host is required when smtp is enabled")
	}

	return nil
}

func (i *ImagesConfig) validate() error {
	switch i.Driver {
	case "disk":
		if i.Dir == "" {
			return fmt.Errorf("dir is required for the disk driver")
		}
	case "s3":
		if i.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want disk or s3)", i.Driver)
	}
	return nil
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
