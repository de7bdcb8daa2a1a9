package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse defines the public fields of a user. The password hash
// is never part of any response.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupResponse defines the successful response for the signup endpoint.
type SignupResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title    string `json:"title"`
	Complete *bool  `json:"complete"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// Absent fields leave the task untouched.
type UpdateTaskRequest struct {
	Title    *string `json:"title"`
	Complete *bool   `json:"complete"`
}

// TaskEnvelope wraps a task together with a human-readable message.
type TaskEnvelope struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// newUserResponse builds the public view of a user.
func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
