// AngelaMos | 2026
// entity.go

package profile

import (
	"time"
)

type Profile struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Headline  *string   `db:"headline"`
	Summary   *string   `db:"summary"`
	Location  *string   `db:"location"`
	Website   *string   `db:"website"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
