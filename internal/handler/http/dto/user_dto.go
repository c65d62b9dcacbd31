package dto

import "github.com/mentry-app/mentry-server/internal/domain/entity"

// RegisterUserRequest defines the structure for explicit user registration.
type RegisterUserRequest struct {
	UID         string `json:"uid" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// ToUser converts the request into a user entity.
func (r *RegisterUserRequest) ToUser() *entity.User {
	return &entity.User{
		UID:         r.UID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
	}
}

// UpdateProfileRequest defines the structure for profile updates.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}
