package dto

import "time"

// UserSummary is a user description without the password digest.
type UserSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	IsAdmin         bool   `json:"is_admin"`
}

// UserUpdateRequest is the payload for updating a user. Omitted or empty
// fields are left unchanged.
type UserUpdateRequest struct {
	Username        *string `json:"username,omitempty"`
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirm_password,omitempty"`
	IsAdmin         *bool   `json:"is_admin,omitempty"`
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Users []UserSummary `json:"users"`
}
