// AngelaMos | 2026
// handler.go

package connection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carterperez-dev/truelink/internal/core"
	"github.com/carterperez-dev/truelink/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/connections", func(r chi.Router) {
		r.Use(middleware.RequireIdentity)

		r.Get("/", h.ListConnections)
		r.Post("/request", h.SendRequest)
		r.Get("/requests", h.ListPendingRequests)
		r.Put("/requests/{connectionID}", h.RespondToRequest)
	})
}

func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req RequestConnection
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	conn, err := h.service.Request(r.Context(), userID, req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfConnection):
			core.BadRequest(w, "cannot send a connection request to yourself")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "user")
		case errors.Is(err, ErrAlreadyConnected):
			core.Conflict(w, "connection")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToConnectionResponse(conn))
}

func (h *Handler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	connectionID := chi.URLParam(r, "connectionID")
	if uuid.Validate(connectionID) != nil {
		core.BadRequest(w, "connection ID must be a valid UUID")
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	conn, err := h.service.Respond(r.Context(), connectionID, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "status must be accepted or rejected")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "connection request")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToConnectionResponse(conn))
}

func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	requests, err := h.service.ListPendingRequests(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PendingRequestsResponse{
		Requests: requests,
		Count:    len(requests),
	})
}

func (h *Handler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	connections, err := h.service.ListConnections(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ConnectionsResponse{
		Connections: connections,
		Count:       len(connections),
	})
}
