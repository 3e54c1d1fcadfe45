// AngelaMos | 2026
// dto.go

package profile

import (
	"time"
)

type UpdateProfileRequest struct {
	Headline *string `json:"headline,omitempty" validate:"omitempty,max=200"`
	Summary  *string `json:"summary,omitempty"  validate:"omitempty,max=2000"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Website  *string `json:"website,omitempty"  validate:"omitempty,url,max=500"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Headline  *string   `json:"headline,omitempty"`
	Summary   *string   `json:"summary,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Headline:  p.Headline,
		Summary:   p.Summary,
		Location:  p.Location,
		Website:   p.Website,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
