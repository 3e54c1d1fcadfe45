// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func userRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "full_name", "profile_picture_url",
		"email_verified", "verification_tier", "created_at", "updated_at",
	}).AddRow(
		"u-1", "alice@example.com", "Alice", nil,
		false, TierStandard, time.Now(), time.Now(),
	)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`(?s)SELECT .+ FROM users.+WHERE id = \$1`).
			WithArgs("u-1").
			WillReturnRows(userRow())

		u, err := repo.GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, TierStandard, u.VerificationTier)
	})

	t.Run("missing maps to not found", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectQuery(`(?s)SELECT .+ FROM users`).
			WithArgs("u-404").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "u-404")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestGetByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM users.+LOWER\(email\)`).
		WithArgs("alice@example.com").
		WillReturnRows(userRow())

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
}

func TestExistsByEmail(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"existing email", true},
		{"unknown email", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists)
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs("lookup@example.com").
				WillReturnRows(rows)

			exists, err := repo.ExistsByEmail(
				context.Background(), "lookup@example.com",
			)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
		})
	}
}

func TestExistsByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("u-1").
		WillReturnRows(rows)

	exists, err := repo.ExistsByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
