package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/api/metrics"
	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// AuthHandler handles signup, login and token maintenance.
type AuthHandler struct {
	authService  ports.AuthService
	tokenService ports.TokenService
}

func NewAuthHandler(authService ports.AuthService, tokenService ports.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

// SignUp creates a new user account.
//
// @Summary      Create a user account
// @Description  Signs up a user with email, first name, last name and a password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  signUpResponse
// @Failure      400   {object}  ValidationError
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return NewFieldError("date_of_birth", "date_of_birth must be a date in the format "+dateLayout)
		}
		input.DateOfBirth = &dob
	}

	user, err := h.authService.SignUp(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return NewFieldError("email", "a user with this email already exists")
		}
		return err
	}

	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusCreated, signUpResponse{
		Message: "User Created Successfully",
		Data:    toUserResponse(user),
	})
}

// Login verifies credentials and returns an access/refresh token pair.
//
// @Summary      Log in
// @Description  Logs in a user with email and password and returns a JWT pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pair, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login Successful",
		Token:   *pair,
	})
}

// Refresh exchanges a valid refresh token for a new access token.
//
// @Summary      Refresh an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  refreshResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/jwt/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	access, err := h.tokenService.Refresh(req.Refresh)
	if err != nil {
		return err
	}

	metrics.TokensRefreshedTotal.Inc()

	return c.JSON(http.StatusOK, refreshResponse{Access: access})
}

// Verify checks the signature and expiry of any token.
//
// @Summary      Verify a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyRequest  true  "Token to verify"
// @Success      200   {object}  object
// @Failure      401   {object}  errorResponse
// @Router       /auth/jwt/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.tokenService.Verify(req.Token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, struct{}{})
}
