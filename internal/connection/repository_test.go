// AngelaMos | 2026
// repository_test.go

package connection

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/truelink/internal/core"
)

func newRepoWithMock(t *testing.T) (Repository, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
	)
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewRepository(db), mock, db
}

func connectionRow(id, senderID, receiverID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sender_id", "receiver_id", "status", "created_at", "updated_at",
	}).AddRow(id, senderID, receiverID, status, time.Now(), time.Now())
}

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts pending row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO connections`).
			WithArgs("s-1", "r-1", StatusPending).
			WillReturnRows(connectionRow("c-1", "s-1", "r-1", StatusPending))

		conn, err := repo.Create(ctx, "s-1", "r-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", conn.ID)
		assert.Equal(t, StatusPending, conn.Status)
	})

	t.Run("pair constraint violation maps to duplicate key", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO connections`).
			WithArgs("s-1", "r-1", StatusPending).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(ctx, "s-1", "r-1")
		assert.ErrorIs(t, err, core.ErrDuplicateKey)
	})
}

func TestRepositoryUpdateStatusAsReceiver(t *testing.T) {
	ctx := context.Background()

	t.Run("transitions pending row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`UPDATE connections`).
			WithArgs("c-1", "r-1", StatusAccepted, StatusPending).
			WillReturnRows(connectionRow("c-1", "s-1", "r-1", StatusAccepted))

		conn, err := repo.UpdateStatusAsReceiver(ctx, "c-1", "r-1", StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, conn.Status)
	})

	t.Run("no qualifying row maps to not found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		// Wrong receiver, already-terminal status, and a missing row all
		// produce the same empty result set.
		mock.ExpectQuery(`UPDATE connections`).
			WithArgs("c-1", "intruder", StatusAccepted, StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "sender_id", "receiver_id", "status",
				"created_at", "updated_at",
			}))

		_, err := repo.UpdateStatusAsReceiver(
			ctx, "c-1", "intruder", StatusAccepted,
		)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("second response to the same request is not found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`UPDATE connections`).
			WithArgs("c-1", "r-1", StatusAccepted, StatusPending).
			WillReturnRows(connectionRow("c-1", "s-1", "r-1", StatusAccepted))

		// The accept consumed the pending row, so the reject matches nothing.
		mock.ExpectQuery(`UPDATE connections`).
			WithArgs("c-1", "r-1", StatusRejected, StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "sender_id", "receiver_id", "status",
				"created_at", "updated_at",
			}))

		conn, err := repo.UpdateStatusAsReceiver(ctx, "c-1", "r-1", StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, conn.Status)

		_, err = repo.UpdateStatusAsReceiver(ctx, "c-1", "r-1", StatusRejected)
		assert.ErrorIs(t, err, core.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryListAccepted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"connection_id", "user_id", "full_name", "email",
		"profile_picture_url", "connected_at",
	}).
		AddRow("c-2", "u-2", "Bob", "bob@example.com", nil, time.Now()).
		AddRow("c-1", "u-3", "Carol", "carol@example.com", nil, time.Now())

	mock.ExpectQuery(`(?s)SELECT .+ FROM connections c`).
		WithArgs("u-1", StatusAccepted).
		WillReturnRows(rows)

	conns, err := repo.ListAccepted(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, "Bob", conns[0].FullName)
	assert.Equal(t, "u-3", conns[1].UserID)
}

func TestRepositoryListPendingForReceiver(t *testing.T) {
	t.Run("returns sender details", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"connection_id", "user_id", "full_name", "email",
			"profile_picture_url", "created_at",
		}).AddRow("c-1", "u-2", "Bob", "bob@example.com", nil, time.Now())

		mock.ExpectQuery(`(?s)SELECT .+ FROM connections c`).
			WithArgs("u-1", StatusPending).
			WillReturnRows(rows)

		reqs, err := repo.ListPendingForReceiver(context.Background(), "u-1")
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, "u-2", reqs[0].SenderID)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`(?s)SELECT .+ FROM connections c`).
			WithArgs("u-1", StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{
				"connection_id", "user_id", "full_name", "email",
				"profile_picture_url", "created_at",
			}))

		reqs, err := repo.ListPendingForReceiver(context.Background(), "u-1")
		require.NoError(t, err)
		assert.NotNil(t, reqs)
		assert.Empty(t, reqs)
	})
}
