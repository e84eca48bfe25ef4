// internal/model/workshop.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Workshop is a career workshop scheduled by the SCAD office. Upcoming
// workshops feed student notifications.
type Workshop struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Speaker     string         `gorm:"type:text" json:"speaker"`
	Agenda      pq.StringArray `gorm:"type:text[]" json:"agenda"`
	StartsAt    time.Time      `json:"starts_at"`
	EndsAt      time.Time      `json:"ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cycle is an internship cycle window set by the SCAD office. Cycle
// open/close events feed student notifications.
type Cycle struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
