package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per account. The concrete
// implementation lives in the infrastructure layer (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// AuthService implements signup and credential verification.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle LoginThrottle // optional; nil disables throttling
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        normalizeEmail(input.Email),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user signed up")
	return created, nil
}

// Login verifies the credentials and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller: both collapse to
// domain.ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	key := normalizeEmail(email)

	if s.throttle != nil {
		locked, err := s.throttle.TooManyFailures(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if locked {
			return nil, nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, key)
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, key)
		return nil, nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, key); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("login successful")
	return pair, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
