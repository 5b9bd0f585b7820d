package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// TokenService issues and verifies HS256 bearer tokens. Tokens are
// self-contained: the server keeps no state about what it has issued and
// there is no revocation list.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue signs a token carrying the principal id, username and an absolute
// expiry of now + TTL. Pure computation; nothing is persisted.
func (s *TokenService) Issue(user *domain.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the principal context on
// success. Every failure mode — wrong segment count, undecodable payload,
// expired claim, signature mismatch — collapses into domain.ErrUnauthorized
// so the caller reveals nothing about which check failed.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	id, _ := strconv.ParseInt(sub, 10, 64)
	username, _ := claims["username"].(string)

	return &domain.TokenClaims{UserID: id, Username: username}, nil
}
