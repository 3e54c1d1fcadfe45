// AngelaMos | 2026
// repository.go

package connection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/truelink/internal/core"
)

type Repository interface {
	Create(ctx context.Context, senderID, receiverID string) (*Connection, error)
	UpdateStatusAsReceiver(
		ctx context.Context,
		connectionID, receiverID, status string,
	) (*Connection, error)
	ListAccepted(ctx context.Context, userID string) ([]AcceptedConnection, error)
	ListPendingForReceiver(
		ctx context.Context,
		userID string,
	) ([]PendingRequest, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts a pending connection. The unique index on the user pair
// turns a concurrent duplicate request into a constraint violation instead
// of a second row, so no in-process locking is needed.
func (r *repository) Create(
	ctx context.Context,
	senderID, receiverID string,
) (*Connection, error) {
	const query = `
		INSERT INTO connections (sender_id, receiver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, sender_id, receiver_id, status, created_at, updated_at`

	var conn Connection
	err := r.db.GetContext(ctx, &conn, query, senderID, receiverID, StatusPending)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("create connection: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("create connection: %w", err)
	}

	return &conn, nil
}

// UpdateStatusAsReceiver performs the conditioned transition out of Pending.
// The WHERE clause checks ownership and current status in the same atomic
// statement; zero rows affected means "no such pending connection addressed
// to this user", deliberately indistinguishable between a missing row, a
// foreign receiver, and an already-terminal status.
func (r *repository) UpdateStatusAsReceiver(
	ctx context.Context,
	connectionID, receiverID, status string,
) (*Connection, error) {
	const query = `
		UPDATE connections
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND receiver_id = $2 AND status = $4
		RETURNING id, sender_id, receiver_id, status, created_at, updated_at`

	var conn Connection
	err := r.db.GetContext(
		ctx,
		&conn,
		query,
		connectionID,
		receiverID,
		status,
		StatusPending,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update connection: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update connection: %w", err)
	}

	return &conn, nil
}

func (r *repository) ListAccepted(
	ctx context.Context,
	userID string,
) ([]AcceptedConnection, error) {
	const query = `
		SELECT c.id AS connection_id,
		       u.id AS user_id,
		       u.full_name,
		       u.email,
		       u.profile_picture_url,
		       c.updated_at AS connected_at
		FROM connections c
		JOIN users u ON u.id = CASE
			WHEN c.sender_id = $1 THEN c.receiver_id
			ELSE c.sender_id
		END
		WHERE c.status = $2 AND (c.sender_id = $1 OR c.receiver_id = $1)
		ORDER BY c.updated_at DESC`

	connections := []AcceptedConnection{}
	err := r.db.SelectContext(ctx, &connections, query, userID, StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	return connections, nil
}

func (r *repository) ListPendingForReceiver(
	ctx context.Context,
	userID string,
) ([]PendingRequest, error) {
	const query = `
		SELECT c.id AS connection_id,
		       u.id AS user_id,
		       u.full_name,
		       u.email,
		       u.profile_picture_url,
		       c.created_at
		FROM connections c
		JOIN users u ON u.id = c.sender_id
		WHERE c.receiver_id = $1 AND c.status = $2
		ORDER BY c.created_at DESC`

	requests := []PendingRequest{}
	err := r.db.SelectContext(ctx, &requests, query, userID, StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	return requests, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
