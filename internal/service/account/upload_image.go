package account

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/heartmarshall/blog-backend/internal/domain"
	"github.com/heartmarshall/blog-backend/pkg/ctxutil"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// UploadImage stores the caller's profile image and returns its public URL.
// Returns ErrUnauthorized if no subject is found in context.
func (s *Service) UploadImage(ctx context.Context, input UploadImageInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	email, ok := ctxutil.SubjectFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	data, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(input.Base64Image, ""))
	if err != nil || len(data) == 0 {
		return "", domain.NewValidationError("base64Image", "must be a valid base64 image")
	}

	name := s.newImageName()
	if err := s.images.Save(ctx, name, data); err != nil {
		return "", fmt.Errorf("account.UploadImage save: %w", err)
	}

	url := s.imageURL + name
	if err := s.users.UpdateImage(ctx, email, url); err != nil {
		return "", fmt.Errorf("account.UploadImage: %w", err)
	}

	s.log.InfoContext(ctx, "profile image updated",
		slog.String("email", email),
		slog.Int("bytes", len(data)))

	return url, nil
}
