// Package account implements registration, login and profile image upload.
package account

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/blog-backend/internal/adapter/mail"
	"github.com/heartmarshall/blog-backend/internal/auth"
	"github.com/heartmarshall/blog-backend/internal/config"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	AssignRole(ctx context.Context, userID int64, roleSlug string) error
	UpdateImage(ctx context.Context, email, imageURL string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

type tokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

type imageStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tx       txManager
	hasher   passwordHasher
	tokens   tokenIssuer
	mailer   mailSender
	images   imageStore
	authCfg  config.AuthConfig
	emailCfg config.EmailConfig
	imageURL string

	generatePassword func(length int) (string, error)
	newImageName     func() string
	dummyHash        func() string
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	hasher passwordHasher,
	tokens tokenIssuer,
	mailer mailSender,
	images imageStore,
	authCfg config.AuthConfig,
	emailCfg config.EmailConfig,
	imagesCfg config.ImagesConfig,
) *Service {
	s := &Service{
		log:              logger.With("service", "account"),
		users:            users,
		tx:               tx,
		hasher:           hasher,
		tokens:           tokens,
		mailer:           mailer,
		images:           images,
		authCfg:          authCfg,
		emailCfg:         emailCfg,
		imageURL:         imagesCfg.URLHost,
		generatePassword: auth.GeneratePassword,
		newImageName:     func() string { return uuid.NewString() + ".jpg" },
	}
	// Unknown emails are verified against this hash so both login failures
	// cost the same.
	s.dummyHash = sync.OnceValue(func() string {
		h, err := hasher.Hash("blog-login-timing-equalizer")
		if err != nil {
			return ""
		}
		return h
	})
	return s
}
