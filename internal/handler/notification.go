// internal/handler/notification.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
	userService         *service.UserService
}

func NewNotificationHandler(notificationService *service.NotificationService, userService *service.UserService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		userService:         userService,
	}
}

type NotificationListResponse struct {
	BaseResponse
	Notifications []model.Notification `json:"notifications"`
}

// ListHandler serves the derived notification feed for the acting user.
func (h *NotificationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := h.companyIDFor(r, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	notifications, err := h.notificationService.ListFor(r.Context(), actor, companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Notification listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, NotificationListResponse{
		BaseResponse:  BaseResponse{Ok: true},
		Notifications: notifications,
	})
}

// MarkReadHandler acknowledges one notification by its derived key.
func (h *NotificationHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	if key == "" {
		respondWithError(w, http.StatusBadRequest, "Missing notification key")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), actor, key); err != nil {
		slog.ErrorContext(r.Context(), "Notification mark read error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// MarkAllReadHandler acknowledges every notification currently derivable
// for the acting user.
func (h *NotificationHandler) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := h.companyIDFor(r, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), actor, companyID); err != nil {
		slog.ErrorContext(r.Context(), "Notification mark all read error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// companyIDFor resolves the company scope only when the actor is a company
// user; every other role derives its feed from the actor id alone.
func (h *NotificationHandler) companyIDFor(r *http.Request, actor model.Actor) (*uuid.UUID, error) {
	if actor.Role != model.RoleCompany {
		return nil, nil
	}
	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		return nil, err
	}
	return &companyID, nil
}
