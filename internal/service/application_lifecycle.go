// internal/service/application_lifecycle.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusbridge/internhub/internal/audit"
	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/google/uuid"
)

// transitionEdge is one permitted move in the application state machine.
type transitionEdge struct {
	from model.ApplicationStatus
	to   model.ApplicationStatus
}

// transitionTable holds every permitted status transition per actor role.
// Anything not listed here is rejected.
var transitionTable = map[model.UserRole]map[transitionEdge]bool{
	model.RoleCompany: {
		{model.ApplicationStatusPending, model.ApplicationStatusFinalized}:                true,
		{model.ApplicationStatusPending, model.ApplicationStatusAccepted}:                 true,
		{model.ApplicationStatusFinalized, model.ApplicationStatusAccepted}:               true,
		{model.ApplicationStatusPending, model.ApplicationStatusRejected}:                 true,
		{model.ApplicationStatusFinalized, model.ApplicationStatusRejected}:               true,
		{model.ApplicationStatusAccepted, model.ApplicationStatusCurrentIntern}:           true,
		{model.ApplicationStatusCurrentIntern, model.ApplicationStatusInternshipComplete}: true,
	},
	model.RoleFaculty: {
		{model.ApplicationStatusPending, model.ApplicationStatusAccepted}: true,
		{model.ApplicationStatusPending, model.ApplicationStatusRejected}: true,
		{model.ApplicationStatusPending, model.ApplicationStatusFlagged}:  true,
	},
}

// commentRequired reports whether the target status needs a justification.
func commentRequired(target model.ApplicationStatus) bool {
	return target == model.ApplicationStatusRejected || target == model.ApplicationStatusFlagged
}

// ApplicationLifecycleService validates and applies status transitions on
// internship applications. All status writes go through here; handlers and
// dashboards never touch application status directly.
type ApplicationLifecycleService struct {
	repo        repository.ApplicationRepositoryIface
	transitions repository.StatusTransitionRepositoryIface
	trail       audit.Trail
	now         func() time.Time
}

func NewApplicationLifecycleService(
	repo repository.ApplicationRepositoryIface,
	transitions repository.StatusTransitionRepositoryIface,
	trail audit.Trail,
) *ApplicationLifecycleService {
	if trail == nil {
		trail = &audit.NoOpTrail{}
	}
	return &ApplicationLifecycleService{
		repo:        repo,
		transitions: transitions,
		trail:       trail,
		now:         time.Now,
	}
}

type TransitionInput struct {
	ApplicationID uuid.UUID
	Target        model.ApplicationStatus
	Comment       string
}

// Transition moves an application to the target status on behalf of the
// actor. Re-requesting the current status is a no-op, not an error. A
// concurrent writer that got there first surfaces domain.ErrConflict, so a
// transition's side-effect timestamps are recorded exactly once.
func (s *ApplicationLifecycleService) Transition(ctx context.Context, input TransitionInput, actor model.Actor) (*model.Application, error) {
	target := model.ApplicationStatus(strings.ToLower(strings.TrimSpace(string(input.Target))))
	if !model.KnownApplicationStatus(target) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, input.Target)
	}

	edges, ok := transitionTable[actor.Role]
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.repo.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, err
	}

	// Idempotent re-invocation: the target is already set, short-circuit
	// without rewriting timestamps.
	if app.Status == target {
		return app, nil
	}

	if !edges[transitionEdge{from: app.Status, to: target}] {
		return nil, fmt.Errorf("%w: %s -> %s as %s", domain.ErrInvalidTransition, app.Status, target, actor.Role)
	}

	comment := strings.TrimSpace(input.Comment)
	if commentRequired(target) && comment == "" {
		return nil, domain.ErrMissingComment
	}

	from := app.Status
	app.Status = target
	if comment != "" {
		app.StatusComment = comment
	}

	switch target {
	case model.ApplicationStatusCurrentIntern:
		now := s.now()
		app.InternshipStartDate = &now
	case model.ApplicationStatusInternshipComplete:
		now := s.now()
		app.InternshipEndDate = &now
	}

	if err := s.repo.UpdateVersioned(ctx, app); err != nil {
		return nil, err
	}

	if err := s.trail.RecordTransition(ctx, audit.EntityApplication, app.ID,
		string(from), string(target), actor, comment, nil); err != nil {
		// The transition itself committed; a trail failure is logged, not
		// returned.
		slog.ErrorContext(ctx, "recording application transition", "error", err, "applicationID", app.ID)
	}

	return app, nil
}

// History returns the recorded transition trail for an application.
func (s *ApplicationLifecycleService) History(ctx context.Context, applicationID uuid.UUID) ([]*model.StatusTransition, error) {
	if s.transitions == nil {
		return nil, nil
	}
	return s.transitions.FindByEntity(ctx, audit.EntityApplication, applicationID)
}
