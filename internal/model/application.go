// internal/model/application.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	ApplicationStatusPending            ApplicationStatus = "pending"
	ApplicationStatusFinalized          ApplicationStatus = "finalized"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusFlagged            ApplicationStatus = "flagged"
	ApplicationStatusCurrentIntern      ApplicationStatus = "current_intern"
	ApplicationStatusInternshipComplete ApplicationStatus = "internship_complete"
)

// KnownApplicationStatus reports whether s is one of the closed set of
// application statuses. Anything else is rejected before it can reach
// storage.
func KnownApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusFinalized,
		ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusFlagged, ApplicationStatusCurrentIntern,
		ApplicationStatusInternshipComplete:
		return true
	default:
		return false
	}
}

// Application is a student's application to an internship. Status is the
// central state machine; Version guards read-modify-write races on it.
type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InternshipID uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_internship_student" json:"internship_id"`
	StudentID    uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_internship_student" json:"student_id"`
	Status       ApplicationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`

	CoverLetter        string `gorm:"type:text" json:"cover_letter"`
	WhyApplying        string `gorm:"type:text" json:"why_applying"`
	RelevantExperience string `gorm:"type:text" json:"relevant_experience"`

	// Documents holds opaque references to uploaded files (resume,
	// certificates). The core never inspects their contents.
	Documents datatypes.JSON `gorm:"type:jsonb" json:"documents,omitempty"`

	StatusComment       string     `gorm:"type:text" json:"status_comment,omitempty"`
	AppliedAt           time.Time  `json:"applied_at"`
	InternshipStartDate *time.Time `json:"internship_start_date,omitempty"`
	InternshipEndDate   *time.Time `json:"internship_end_date,omitempty"`

	Version   int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Internship Internship `gorm:"foreignKey:InternshipID" json:"-"`
	Student    User       `gorm:"foreignKey:StudentID" json:"-"`
}
