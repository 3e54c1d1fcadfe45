// AngelaMos | 2026
// handler_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/truelink/internal/core"
	"github.com/carterperez-dev/truelink/internal/middleware"
	"github.com/carterperez-dev/truelink/internal/user"
)

func newTestRouter(t *testing.T, repo Repository, lookup UserLookup) chi.Router {
	t.Helper()

	handler := NewHandler(newTestService(t, repo, lookup))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(
	router chi.Router,
	path, body string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("returns user and token", func(t *testing.T) {
		router := newTestRouter(t, &fakeRepository{}, newFakeUserLookup())

		rec := postJSON(router, "/auth/register", `{
			"email": "alice@example.com",
			"full_name": "Alice",
			"password": "hunter22"
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool         `json:"success"`
			Data    AuthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.Token)
		assert.Equal(t, "alice@example.com", resp.Data.User.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		lookup := newFakeUserLookup()
		lookup.add(&user.User{
			ID:    uuid.New().String(),
			Email: "taken@example.com",
		})
		router := newTestRouter(t, &fakeRepository{}, lookup)

		rec := postJSON(router, "/auth/register", `{
			"email": "taken@example.com",
			"full_name": "Late Comer",
			"password": "hunter22"
		}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		router := newTestRouter(t, &fakeRepository{}, newFakeUserLookup())

		rec := postJSON(router, "/auth/register", `{
			"email": "not-an-email",
			"full_name": "Alice",
			"password": "hunter22"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		router := newTestRouter(t, &fakeRepository{}, newFakeUserLookup())

		rec := postJSON(router, "/auth/register", `{
			"email": "alice@example.com",
			"full_name": "Alice",
			"password": "short"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		router := newTestRouter(t, &fakeRepository{}, newFakeUserLookup())

		rec := postJSON(router, "/auth/register", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	setup := func(t *testing.T) chi.Router {
		t.Helper()

		hash, err := core.HashPassword("hunter22")
		require.NoError(t, err)

		u := &user.User{
			ID:       uuid.New().String(),
			Email:    "alice@example.com",
			FullName: "Alice",
		}
		lookup := newFakeUserLookup()
		lookup.add(u)

		repo := &fakeRepository{
			credential: &Credential{
				ID:           uuid.New().String(),
				UserID:       u.ID,
				Provider:     ProviderPassword,
				PasswordHash: &hash,
			},
		}

		return newTestRouter(t, repo, lookup)
	}

	t.Run("valid credentials", func(t *testing.T) {
		router := setup(t)

		rec := postJSON(router, "/auth/login", `{
			"email": "alice@example.com",
			"password": "hunter22"
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data AuthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		router := setup(t)

		rec := postJSON(router, "/auth/login", `{
			"email": "alice@example.com",
			"password": "wrong-password"
		}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})

	t.Run("unknown email reads identically", func(t *testing.T) {
		router := setup(t)

		rec := postJSON(router, "/auth/login", `{
			"email": "nobody@example.com",
			"password": "hunter22"
		}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})
}

func TestGetMeEndpoint(t *testing.T) {
	u := &user.User{
		ID:       uuid.New().String(),
		Email:    "alice@example.com",
		FullName: "Alice",
	}
	lookup := newFakeUserLookup()
	lookup.add(u)

	router := newTestRouter(t, &fakeRepository{}, lookup)

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, u.ID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
	})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
