package ports

import (
	"context"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// AuthRepository looks up the admin principal during login. The table is
// read-only from this layer's point of view.
type AuthRepository interface {
	// FindByCredentials returns the principal matching the exact
	// username/digest pair, or domain.ErrInvalidCredentials.
	FindByCredentials(ctx context.Context, username, passwordHash string) (*domain.AdminUser, error)
}
