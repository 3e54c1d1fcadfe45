// AngelaMos | 2026
// entity.go

package connection

import (
	"time"
)

// Connection is a directed relationship request from sender to receiver.
// It is created Pending, transitions exactly once to Accepted or Rejected
// by the receiver, and is never deleted.
type Connection struct {
	ID         string    `db:"id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

func (c *Connection) IsPending() bool {
	return c.Status == StatusPending
}

// Involves reports whether the user is either side of the connection.
func (c *Connection) Involves(userID string) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}
