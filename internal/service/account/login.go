package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/blog-backend/internal/auth"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

// MsgInvalidCredentials is returned for both unknown emails and wrong
// passwords.
const MsgInvalidCredentials = "invalid email or password"

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.hasher.Verify(s.dummyHash(), input.Password)
		return "", invalidCredentials()
	case err != nil:
		return "", fmt.Errorf("account.Login: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, input.Password) {
		return "", invalidCredentials()
	}

	token, err := s.tokens.Issue(auth.Identity{Email: user.Email, Roles: user.RoleSlugs()})
	if err != nil {
		return "", fmt.Errorf("account.Login issue token: %w", err)
	}
	return token, nil
}

func invalidCredentials() error {
	return domain.NewPublicError(domain.ErrUnauthorized, MsgInvalidCredentials)
}
