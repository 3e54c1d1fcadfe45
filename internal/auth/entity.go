// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Credential is a provider-specific proof of identity tied to a user. For
// the password provider it carries the encoded argon2id hash; the hash never
// leaves this package.
type Credential struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Provider     string    `db:"provider"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	ProviderPassword = "password"
)
