package ports

import (
	"context"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// AuthService authenticates the admin principal and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error)
}

// TokenVerifier checks a bearer token and returns its principal context.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}
