// Package imagestore persists uploaded profile images on local disk or in
// an S3-compatible bucket.
package imagestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/blog-backend/internal/config"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// Store saves an image under a flat file name.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.ImagesConfig) (Store, error) {
	switch cfg.Driver {
	case "disk":
		return NewDisk(cfg.Dir)
	case "s3":
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("imagestore: unknown driver %q", cfg.Driver)
	}
}

// checkName rejects names that would escape the store root.
func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return domain.NewValidationError("name", "must be a plain file name")
	}
	return nil
}
