package dto

import "workzo_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,oneof=EMPLOYER WORKER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

// LoginResponse mirrors what the client stores in its session: the bearer
// token plus the minimum identity fields.
type LoginResponse struct {
	Token string        `json:"token"`
	User  LoginUserInfo `json:"user"`
}

type LoginUserInfo struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Role models.UserRole `json:"role"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
