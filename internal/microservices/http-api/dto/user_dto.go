package dto

import (
	"time"

	"gamerental/internal/microservices/http-api/models"
)

// CreateUserRequest is the signup payload for POST /users.
type CreateUserRequest struct {
	Username  string `json:"username" schema:"required"`
	FirstName string `json:"firstname" schema:"required"`
	LastName  string `json:"lastname" schema:"required"`
	Email     string `json:"email" schema:"required"`
	Password  string `json:"password" schema:"required"`
}

// UpdateUserRequest is used for PUT /users/:id (partial updates allowed).
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" schema:"optional"`
	FirstName *string `json:"firstname,omitempty" schema:"optional"`
	LastName  *string `json:"lastname,omitempty" schema:"optional"`
	Email     *string `json:"email,omitempty" schema:"optional"`
	Password  *string `json:"password,omitempty" schema:"optional"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	UserID   uint   `json:"userID" schema:"required,positive"`
	Password string `json:"password" schema:"required"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Columns maps the provided profile fields to their table columns.
// The password is left to the caller, it has to be hashed first.
func (r UpdateUserRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.Username != nil {
		cols["username"] = *r.Username
	}
	if r.FirstName != nil {
		cols["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		cols["last_name"] = *r.LastName
	}
	if r.Email != nil {
		cols["email"] = *r.Email
	}
	return cols
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserDetailResponse is a user together with everything they own.
type UserDetailResponse struct {
	UserResponse
	Rentals        []RentalResponse       `json:"rentals"`
	GameReviews    []models.GameReview    `json:"gameReviews"`
	ConsoleReviews []models.ConsoleReview `json:"consoleReviews"`
}

func FromModelToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
