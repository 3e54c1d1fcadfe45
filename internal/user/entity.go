// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID                string    `db:"id"`
	Email             string    `db:"email"`
	FullName          string    `db:"full_name"`
	ProfilePictureURL *string   `db:"profile_picture_url"`
	EmailVerified     bool      `db:"email_verified"`
	VerificationTier  string    `db:"verification_tier"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

const (
	TierStandard = "standard"
	TierVerified = "verified"
)
