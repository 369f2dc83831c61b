package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenService issues and verifies HS256-signed JWT pairs. Tokens are
// stateless: validity rests on signature and expiry alone, nothing is
// persisted or revocable server-side.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (s *TokenService) IssuePair(user *domain.User) (*ports.TokenPair, error) {
	id := user.Identity()

	access, err := s.sign(id, ports.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(id, ports.TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != ports.TokenTypeRefresh {
		return "", domain.ErrInvalidToken
	}
	return s.sign(&claims.Identity, ports.TokenTypeAccess, s.accessTTL)
}

func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["sub"].(float64)
	tokenType, _ := claims["token_type"].(string)
	if userID <= 0 || tokenType == "" {
		return nil, domain.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["first_name"].(string)

	return &ports.TokenClaims{
		Identity: domain.Identity{
			UserID:    int64(userID),
			Email:     email,
			FirstName: firstName,
		},
		Type:      tokenType,
		ExpiresAt: exp.Time,
	}, nil
}

func (s *TokenService) sign(id *domain.Identity, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        id.UserID,
		"email":      id.Email,
		"first_name": id.FirstName,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
