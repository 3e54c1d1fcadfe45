// AngelaMos | 2026
// service.go

package connection

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/truelink/internal/core"
)

var (
	ErrSelfConnection   = errors.New("cannot connect to yourself")
	ErrAlreadyConnected = errors.New("connection already exists")
)

type UserChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo  Repository
	users UserChecker
}

func NewService(repo Repository, users UserChecker) *Service {
	return &Service{repo: repo, users: users}
}

// Request creates a pending connection from sender to receiver. Self
// requests are rejected before touching the store; duplicates in either
// direction surface as ErrAlreadyConnected via the storage constraint.
func (s *Service) Request(
	ctx context.Context,
	senderID, receiverID string,
) (*Connection, error) {
	if senderID == receiverID {
		return nil, fmt.Errorf(
			"request connection: %w",
			ErrSelfConnection,
		)
	}

	exists, err := s.users.Exists(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("check receiver: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("request connection: %w", core.ErrNotFound)
	}

	conn, err := s.repo.Create(ctx, senderID, receiverID)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrAlreadyConnected
		}
		return nil, err
	}

	return conn, nil
}

// Respond transitions a pending connection to accepted or rejected. Only
// the receiver may respond, and only once; both rules are enforced by the
// conditioned update, which reports ErrNotFound when no row qualifies.
func (s *Service) Respond(
	ctx context.Context,
	connectionID, actingUserID, status string,
) (*Connection, error) {
	if status != StatusAccepted && status != StatusRejected {
		return nil, fmt.Errorf(
			"respond: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateStatusAsReceiver(ctx, connectionID, actingUserID, status)
}

func (s *Service) ListConnections(
	ctx context.Context,
	userID string,
) ([]AcceptedConnection, error) {
	return s.repo.ListAccepted(ctx, userID)
}

func (s *Service) ListPendingRequests(
	ctx context.Context,
	userID string,
) ([]PendingRequest, error) {
	return s.repo.ListPendingForReceiver(ctx, userID)
}
