package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (t *stubThrottle) TooManyFailures(_ context.Context, key string) (bool, error) {
	return t.failures[key] >= t.limit, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, key string) error {
	t.failures[key]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, key string) error {
	delete(t.failures, key)
	return nil
}

func newAuthService(repo ports.UserRepository, throttle LoginThrottle) *AuthService {
	tokens := NewTokenService("secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func TestAuthService_SignUp_HashesPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Email:     "Dan@Gmail.com",
		Password:  "password123456",
		FirstName: "Dan",
		LastName:  "Ade",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.Email != "dan@gmail.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "password123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	input := ports.SignUpInput{Email: "dan@gmail.com", Password: "password123456", FirstName: "Dan", LastName: "Ade"}
	if _, err := svc.SignUp(context.Background(), input); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignUpThenLogin(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Email: "dan@gmail.com", Password: "password123456", FirstName: "Dan", LastName: "Ade",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	pair, user, err := svc.Login(context.Background(), "dan@gmail.com", "password123456")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected non-empty token pair, got %+v", pair)
	}
	if user == nil || user.FirstName != "Dan" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_FailureIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	_, _ = svc.SignUp(context.Background(), ports.SignUpInput{
		Email: "dan@gmail.com", Password: "password123456", FirstName: "Dan", LastName: "Ade",
	})

	// Wrong password and unknown email must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "dan@gmail.com", "wrongpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@gmail.com", "password123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty credentials: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	throttle := newStubThrottle(3)
	svc := newAuthService(newStubUserRepo(), throttle)

	_, _ = svc.SignUp(context.Background(), ports.SignUpInput{
		Email: "dan@gmail.com", Password: "password123456", FirstName: "Dan", LastName: "Ade",
	})

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "dan@gmail.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// Over the limit even the correct password is locked out.
	if _, _, err := svc.Login(context.Background(), "dan@gmail.com", "password123456"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsThrottleOnSuccess(t *testing.T) {
	throttle := newStubThrottle(3)
	svc := newAuthService(newStubUserRepo(), throttle)

	_, _ = svc.SignUp(context.Background(), ports.SignUpInput{
		Email: "dan@gmail.com", Password: "password123456", FirstName: "Dan", LastName: "Ade",
	})

	_, _, _ = svc.Login(context.Background(), "dan@gmail.com", "badpass")
	if _, _, err := svc.Login(context.Background(), "dan@gmail.com", "password123456"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if throttle.failures["dan@gmail.com"] != 0 {
		t.Fatalf("expected failure counter reset, got %d", throttle.failures["dan@gmail.com"])
	}
}
