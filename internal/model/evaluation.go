// internal/model/evaluation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyEvaluation is a company's evaluation of a student intern. At most
// one exists per (student, internship, company); saves are upserts on that
// key.
type CompanyEvaluation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_evaluations_key" json:"student_id"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_evaluations_key" json:"internship_id"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_evaluations_key" json:"company_id"`

	Rating          int    `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	Comments        string `gorm:"type:text" json:"comments"`
	SupervisorName  string `gorm:"type:text" json:"supervisor_name"`
	SupervisorEmail string `gorm:"type:citext" json:"supervisor_email"`

	InternshipStartDate *time.Time `json:"internship_start_date,omitempty"`
	InternshipEndDate   *time.Time `json:"internship_end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentEvaluation is a student's evaluation of a company, keyed by
// (student, internship). Recommend feeds the top-rated-companies
// statistics.
type StudentEvaluation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_evaluations_key" json:"student_id"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_evaluations_key" json:"internship_id"`

	Comments  string `gorm:"type:text" json:"comments"`
	Recommend bool   `gorm:"not null;default:false" json:"recommend"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
