// internal/model/report.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusAccepted ReportStatus = "accepted"
	ReportStatusRejected ReportStatus = "rejected"
	ReportStatusFlagged  ReportStatus = "flagged"
)

func KnownReportStatus(s ReportStatus) bool {
	switch s {
	case ReportStatusPending, ReportStatusAccepted, ReportStatusRejected, ReportStatusFlagged:
		return true
	default:
		return false
	}
}

// Report is a student's internship report, keyed by (student, internship).
// The student may edit freely while IsSubmitted is false; after submission
// the record is read-only to the student and the review fields are owned by
// faculty.
type Report struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reports_key" json:"student_id"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reports_key" json:"internship_id"`

	Title          string         `gorm:"type:text;not null" json:"title"`
	Introduction   string         `gorm:"type:text" json:"introduction"`
	Body           string         `gorm:"type:text" json:"body"`
	HelpfulCourses pq.StringArray `gorm:"type:text[]" json:"helpful_courses"`

	IsSubmitted bool       `gorm:"not null;default:false" json:"is_submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`

	Status        ReportStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	StatusComment string       `gorm:"type:text" json:"status_comment,omitempty"`
	ReviewerID    *uuid.UUID   `gorm:"type:uuid" json:"reviewer_id,omitempty"`
	ReviewerName  string       `gorm:"type:text" json:"reviewer_name,omitempty"`
	ReviewedAt    *time.Time   `json:"reviewed_at,omitempty"`

	Version   int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
