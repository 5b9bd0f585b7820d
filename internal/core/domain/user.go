package domain

// AdminUser is the single administrative identity permitted to authenticate.
// Rows are seeded out of band and never mutated by the API.
type AdminUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// TokenClaims is the principal context carried by a verified bearer token.
type TokenClaims struct {
	UserID   int64
	Username string
}
