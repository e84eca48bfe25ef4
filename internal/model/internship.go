// internal/model/internship.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InternshipStatus string

const (
	InternshipStatusActive InternshipStatus = "active"
	InternshipStatusClosed InternshipStatus = "closed"
)

// Internship is a posting owned by an accepted company. The number of
// applicants is never stored on the posting; it is derived by counting
// applications that reference it.
type Internship struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"company_id"`
	Title        string           `gorm:"type:text;not null" json:"title"`
	Department   string           `gorm:"type:text" json:"department"`
	Description  string           `gorm:"type:text" json:"description"`
	Requirements pq.StringArray   `gorm:"type:text[]" json:"requirements"`
	Location     string           `gorm:"type:text" json:"location"`
	Duration     string           `gorm:"type:text" json:"duration"`
	Paid         bool             `gorm:"not null;default:false" json:"paid"`
	Salary       string           `gorm:"type:text" json:"salary,omitempty"`
	Deadline     time.Time        `json:"deadline"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	Status       InternshipStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	Version      int64            `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}
