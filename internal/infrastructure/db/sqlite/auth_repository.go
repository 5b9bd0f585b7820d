package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// AuthRepository reads the admin principal. The table is seeded out of band
// and this layer never writes to it.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindByCredentials returns the principal matching the exact username and
// password digest. Both predicates are bound parameters; a miss on either
// collapses into domain.ErrInvalidCredentials.
func (r *AuthRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash FROM admin_users WHERE username = ? AND password_hash = ?",
		username, passwordHash,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin user: %w", err)
	}
	return &user, nil
}
