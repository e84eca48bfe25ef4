// internal/handler/scope.go
package handler

import (
	"context"
	"net/http"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/middleware"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// requireActor pulls the authenticated actor out of the request context.
// The auth middleware guarantees it is present on protected routes; the
// fallback response covers miswired route groups.
func requireActor(w http.ResponseWriter, r *http.Request) (model.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	}
	return actor, ok
}

// companyScope resolves the company record a company-role actor acts for.
// Company users without an accepted registration link carry no company id.
func companyScope(ctx context.Context, users *service.UserService, actor model.Actor) (uuid.UUID, error) {
	user, err := users.ResolveActor(ctx, actor.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.CompanyID == nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return *user.CompanyID, nil
}

// pathID parses the {id} chi URL parameter as a UUID.
func pathID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidInput
	}
	return id, nil
}
