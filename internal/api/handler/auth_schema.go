package handler

import (
	"time"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

type signUpRequest struct {
	Email       string `json:"email"         validate:"required,email,max=80"`
	Password    string `json:"password"      validate:"required,min=8"`
	FirstName   string `json:"first_name"    validate:"required,max=45"`
	LastName    string `json:"last_name"     validate:"required,max=45"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// userResponse is the public representation of a user; the password hash
// never leaves the server.
type userResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type signUpResponse struct {
	Message string       `json:"message"`
	Data    userResponse `json:"data"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Token   ports.TokenPair `json:"token"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type verifyRequest struct {
	Token string `json:"token" validate:"required"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.UTC(),
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}
