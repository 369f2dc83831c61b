package ports

import (
	"time"

	"github.com/blogforge/blog-api/internal/core/domain"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the result of a successful login: a short-lived access token
// and a longer-lived refresh token. Neither is persisted server-side.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenClaims is the verified content of a token.
type TokenClaims struct {
	Identity  domain.Identity
	Type      string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless signed tokens.
type TokenService interface {
	IssuePair(user *domain.User) (*TokenPair, error)
	// Refresh validates a refresh token and issues a new access token bound
	// to the same identity. Expired, malformed or access-type tokens are
	// rejected with domain.ErrInvalidToken.
	Refresh(refreshToken string) (string, error)
	// Verify validates signature and expiry of any token and returns its
	// claims. A malformed token is rejected outright, never treated as
	// anonymous.
	Verify(token string) (*TokenClaims, error)
}
