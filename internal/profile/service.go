// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"errors"

	"github.com/carterperez-dev/truelink/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetMine returns the caller's profile. A user without a stored profile row
// gets an empty profile rather than an error.
func (s *Service) GetMine(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return &Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) UpdateMine(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*Profile, error) {
	return s.repo.Upsert(ctx, userID, req)
}
