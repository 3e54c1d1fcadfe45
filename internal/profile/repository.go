// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/truelink/internal/core"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, userID string, req UpdateProfileRequest) (*Profile, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	const query = `
		SELECT id, user_id, headline, summary, location, website,
		       created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// Upsert creates the profile row on first update and patches only the
// fields present in the request thereafter.
func (r *repository) Upsert(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*Profile, error) {
	const query = `
		INSERT INTO profiles (user_id, headline, summary, location, website)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET headline   = COALESCE($2, profiles.headline),
		    summary    = COALESCE($3, profiles.summary),
		    location   = COALESCE($4, profiles.location),
		    website    = COALESCE($5, profiles.website),
		    updated_at = NOW()
		RETURNING id, user_id, headline, summary, location, website,
		          created_at, updated_at`

	var profile Profile
	err := r.db.GetContext(
		ctx,
		&profile,
		query,
		userID,
		req.Headline,
		req.Summary,
		req.Location,
		req.Website,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &profile, nil
}
