package models

import "time"

// Role is the access level of a console user.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

// User is a console account managed by the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest carries credentials to the backend login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest registers a new console account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserRequest patches an existing account.
type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// UsersResponse is the backend envelope for user listings.
type UsersResponse struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
	Total   int    `json:"total"`
}

// UserResponse is the backend envelope for single-user operations.
type UserResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}
