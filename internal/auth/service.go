// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/truelink/internal/core"
	"github.com/carterperez-dev/truelink/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type Service struct {
	repo   Repository
	users  UserLookup
	tokens *TokenManager
}

func NewService(
	repo Repository,
	users UserLookup,
	tokens *TokenManager,
) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user and its password credential atomically, then
// issues a token for the new account. The email pre-check is advisory; the
// storage-layer uniqueness constraint is what guarantees no duplicate
// commits under concurrency.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.CreateUserWithPassword(
		ctx,
		normalizeEmail(req.Email),
		req.FullName,
		passwordHash,
	)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createAuthResponse(created)
}

// Login verifies credentials and issues a token. Every negative path
// (unknown email, missing password credential, wrong password) returns the
// same ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	cred, err := s.repo.GetPasswordCredential(ctx, u.ID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		cred.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.repo.UpdatePasswordHash(ctx, u.ID, newHash)
	}

	return s.createAuthResponse(u)
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*user.UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := user.ToUserResponse(u)
	return &resp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) createAuthResponse(u *user.User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  user.ToUserResponse(u),
	}, nil
}
