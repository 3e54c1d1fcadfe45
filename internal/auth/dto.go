// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/carterperez-dev/truelink/internal/user"
)

type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Password string `json:"password"  validate:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}
