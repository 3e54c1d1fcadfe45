// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/truelink/internal/core"
	"github.com/carterperez-dev/truelink/internal/user"
)

type Repository interface {
	CreateUserWithPassword(
		ctx context.Context,
		email, fullName, passwordHash string,
	) (*user.User, error)
	GetPasswordCredential(
		ctx context.Context,
		userID string,
	) (*Credential, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateUserWithPassword inserts the user row and its password credential in
// a single transaction. A failure on either insert rolls back both, so a
// user row never exists without its credential. A unique violation on email
// maps to ErrDuplicateKey; this, not the caller's pre-check, is what keeps
// concurrent registrations for the same email safe.
func (r *repository) CreateUserWithPassword(
	ctx context.Context,
	email, fullName, passwordHash string,
) (*user.User, error) {
	const insertUser = `
		INSERT INTO users (email, full_name)
		VALUES ($1, $2)
		RETURNING id, email, full_name, profile_picture_url, email_verified,
		          verification_tier, created_at, updated_at`

	const insertCredential = `
		INSERT INTO credentials (user_id, provider, password_hash)
		VALUES ($1, $2, $3)`

	var created user.User

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &created, insertUser, email, fullName); err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("insert user: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("insert user: %w", err)
		}

		_, err := tx.ExecContext(
			ctx,
			insertCredential,
			created.ID,
			ProviderPassword,
			passwordHash,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("insert credential: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("insert credential: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetPasswordCredential(
	ctx context.Context,
	userID string,
) (*Credential, error) {
	const query = `
		SELECT id, user_id, provider, password_hash, created_at
		FROM credentials
		WHERE user_id = $1 AND provider = $2`

	var cred Credential
	err := r.db.GetContext(ctx, &cred, query, userID, ProviderPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get credential: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	return &cred, nil
}

func (r *repository) UpdatePasswordHash(
	ctx context.Context,
	userID, passwordHash string,
) error {
	const query = `
		UPDATE credentials
		SET password_hash = $2
		WHERE user_id = $1 AND provider = $3`

	result, err := r.db.ExecContext(
		ctx,
		query,
		userID,
		passwordHash,
		ProviderPassword,
	)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password hash: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
