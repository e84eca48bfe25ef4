// internal/audit/trail.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/google/uuid"
)

// Entity type labels used on trail rows.
const (
	EntityApplication = "application"
	EntityReport      = "report"
	EntityCompany     = "company"
)

// Trail defines the interface for recording lifecycle transitions
type Trail interface {
	// RecordTransition appends a transition to the audit trail
	RecordTransition(
		ctx context.Context,
		entityType string,
		entityID uuid.UUID,
		from, to string,
		actor model.Actor,
		comment string,
		contextData map[string]interface{},
	) error
}

// NoOpTrail is a trail that records nothing
type NoOpTrail struct{}

// RecordTransition implements Trail.RecordTransition
func (t *NoOpTrail) RecordTransition(
	ctx context.Context,
	entityType string,
	entityID uuid.UUID,
	from, to string,
	actor model.Actor,
	comment string,
	contextData map[string]interface{},
) error {
	return nil
}

// DBTrail persists transitions through the status transition repository.
type DBTrail struct {
	repo repository.StatusTransitionRepositoryIface
}

func NewDBTrail(repo repository.StatusTransitionRepositoryIface) *DBTrail {
	return &DBTrail{repo: repo}
}

func (t *DBTrail) RecordTransition(
	ctx context.Context,
	entityType string,
	entityID uuid.UUID,
	from, to string,
	actor model.Actor,
	comment string,
	contextData map[string]interface{},
) error {
	row := &model.StatusTransition{
		EntityType: entityType,
		EntityID:   entityID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Comment:    comment,
	}

	if len(contextData) > 0 {
		data, err := json.Marshal(contextData)
		if err != nil {
			return fmt.Errorf("marshaling trail context: %w", err)
		}
		row.Context = data
	}

	if err := t.repo.Append(ctx, row); err != nil {
		return fmt.Errorf("appending trail row: %w", err)
	}
	return nil
}
