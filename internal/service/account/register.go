package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/blog-backend/internal/adapter/mail"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// MsgEmailTaken is the client-facing message for a duplicate registration.
const MsgEmailTaken = "05X99 - this e-mail is already registered"

// Register creates an account with a generated password, assigns the
// default role and emails the password. A failed email does not fail
// registration.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	password, err := s.generatePassword(s.authCfg.GeneratedPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("account.Register generate password: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Slug:         domain.UserSlug(input.Email),
		PasswordHash: hash,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		return s.users.AssignRole(ctx, created.ID, s.authCfg.DefaultRole)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, domain.NewPublicError(domain.ErrAlreadyExists, MsgEmailTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered", slog.String("email", user.Email))

	msg := mail.Registration(s.emailCfg, user.Name, user.Email, password)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "registration email not delivered",
			slog.String("email", user.Email),
			slog.String("error", err.Error()))
	}

	return &RegisterResult{User: user.Email, Password: password}, nil
}
