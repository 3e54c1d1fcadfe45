// AngelaMos | 2026
// dto.go

package connection

import (
	"time"
)

type RequestConnection struct {
	ReceiverID string `json:"receiver_id" validate:"required,uuid"`
}

type RespondRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type ConnectionResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PendingRequest is a pending connection joined with its sender.
type PendingRequest struct {
	ConnectionID      string    `db:"connection_id"       json:"id"`
	SenderID          string    `db:"user_id"             json:"sender_id"`
	SenderName        string    `db:"full_name"           json:"sender_name"`
	SenderEmail       string    `db:"email"               json:"sender_email"`
	ProfilePictureURL *string   `db:"profile_picture_url" json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `db:"created_at"          json:"created_at"`
}

// AcceptedConnection is an accepted connection joined with the counterpart
// user, whichever side of the row they are on.
type AcceptedConnection struct {
	ConnectionID      string    `db:"connection_id"       json:"id"`
	UserID            string    `db:"user_id"             json:"user_id"`
	FullName          string    `db:"full_name"           json:"full_name"`
	Email             string    `db:"email"               json:"email"`
	ProfilePictureURL *string   `db:"profile_picture_url" json:"profile_picture_url,omitempty"`
	ConnectedAt       time.Time `db:"connected_at"        json:"connected_at"`
}

type PendingRequestsResponse struct {
	Requests []PendingRequest `json:"requests"`
	Count    int              `json:"count"`
}

type ConnectionsResponse struct {
	Connections []AcceptedConnection `json:"connections"`
	Count       int                  `json:"count"`
}

func ToConnectionResponse(c *Connection) ConnectionResponse {
	return ConnectionResponse{
		ID:         c.ID,
		SenderID:   c.SenderID,
		ReceiverID: c.ReceiverID,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
