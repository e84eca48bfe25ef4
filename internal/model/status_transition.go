// internal/model/status_transition.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StatusTransition is an append-only audit row recorded for every
// successful lifecycle transition on an application or report.
type StatusTransition struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EntityType string         `gorm:"type:text;not null;index:idx_status_transitions_entity" json:"entity_type"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_status_transitions_entity" json:"entity_id"`
	FromStatus string         `gorm:"type:text;not null" json:"from_status"`
	ToStatus   string         `gorm:"type:text;not null" json:"to_status"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null" json:"actor_id"`
	ActorRole  UserRole       `gorm:"type:text;not null" json:"actor_role"`
	Comment    string         `gorm:"type:text" json:"comment,omitempty"`
	Context    datatypes.JSON `gorm:"type:jsonb" json:"context,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
