// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeApplication NotificationType = "application"
	NotificationTypeCycle       NotificationType = "cycle"
	NotificationTypeWorkshop    NotificationType = "workshop"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReport      NotificationType = "report"
)

// Notification is a derived view object, never persisted. Key is
// deterministic for a given source record and event so that acknowledgment
// survives regeneration.
type Notification struct {
	Key     string           `json:"key"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
}

// NotificationRead records that a user has acknowledged a derived
// notification. Read state lives here, not on the domain entities the
// notifications are derived from.
type NotificationRead struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_notification_reads_key" json:"user_id"`
	Role   UserRole  `gorm:"type:text;not null;uniqueIndex:idx_notification_reads_key" json:"role"`
	Key    string    `gorm:"type:text;not null;uniqueIndex:idx_notification_reads_key" json:"key"`

	CreatedAt time.Time `json:"created_at"`
}
