package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/service"
)

func signedPair(t *testing.T, tokens *service.TokenService) (string, string) {
	t.Helper()
	pair, err := tokens.IssuePair(&domain.User{
		ID:        7,
		Email:     "alice@example.com",
		FirstName: "Alice",
	})
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	return pair.Access, pair.Refresh
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)
	access, _ := signedPair(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		id := Identity(c)
		if id == nil {
			t.Fatalf("identity not set")
		}
		if id.UserID != 7 || id.Email != "alice@example.com" || id.FirstName != "Alice" {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)
	_, refresh := signedPair(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthOptional_NoHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := AuthOptional(tokens)(func(c echo.Context) error {
		called = true
		if Identity(c) != nil {
			t.Fatalf("expected anonymous identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// A bad token on an optional route is still a hard failure. Presenting
// credentials and having them rejected must never downgrade to anonymous.
func TestAuthOptional_BadTokenRejected(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	otherTokens := service.NewTokenService("other-secret", time.Minute, time.Hour)
	access, _ := signedPair(t, otherTokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := AuthOptional(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Minute, time.Hour)

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        int64(7),
		"email":      "alice@example.com",
		"first_name": "Alice",
		"token_type": "access",
		"iat":        now.Add(-2 * time.Hour).Unix(),
		"exp":        now.Add(-time.Hour).Unix(),
	})
	access, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
