// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	EmailVerified     bool      `json:"email_verified"`
	VerificationTier  string    `json:"verification_tier"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		ProfilePictureURL: u.ProfilePictureURL,
		EmailVerified:     u.EmailVerified,
		VerificationTier:  u.VerificationTier,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
