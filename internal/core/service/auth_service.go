package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/ddcrdc/content-api/internal/core/domain"
	"github.com/ddcrdc/content-api/internal/core/ports"
)

// AuthService implements admin login. There is exactly one principal model:
// no registration, no roles, no refresh tokens.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login checks the username/password pair against the stored digest and
// issues a bearer token on success. The stored credential is a lowercase-hex
// SHA-256 digest; the lookup binds both username and digest so a miss on
// either yields the same domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	digest := hashPassword(password)

	user, err := s.repo.FindByCredentials(ctx, username, digest)
	if err != nil {
		return "", nil, err
	}

	// The SQL lookup already matched the digest; re-compare in constant
	// time so no string-equality timing channel exists on this path.
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(digest)) != 1 {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// hashPassword returns the lowercase-hex SHA-256 digest of password, the
// format admin_users.password_hash is seeded with.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
