package users

import (
	"time"
)

// CreateUser is the request payload for creating a user document.
type CreateUser struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=120"`
}

// UpdateUser is the request payload for partial updates.
type UpdateUser struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserResponse is the payload returned by the users router.
type UserResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
}

// NewUserResponse converts a model into a response payload.
func NewUserResponse(m *User) UserResponse {
	return UserResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Email:     m.Email,
		FullName:  m.FullName,
		IsActive:  m.IsActive,
	}
}
