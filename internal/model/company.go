// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanySize string

const (
	CompanySizeSmall     CompanySize = "small"
	CompanySizeMedium    CompanySize = "medium"
	CompanySizeLarge     CompanySize = "large"
	CompanySizeCorporate CompanySize = "corporate"
)

type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "pending"
	CompanyStatusAccepted CompanyStatus = "accepted"
	CompanyStatusRejected CompanyStatus = "rejected"
)

// Company is a registration record reviewed by the SCAD office. Only
// accepted companies may post internships.
type Company struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string        `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Industry string        `gorm:"type:text;not null" json:"industry"`
	Size     CompanySize   `gorm:"type:text;not null;default:'small'" json:"size"`
	Email    string        `gorm:"type:citext;not null" json:"email"`
	Status   CompanyStatus `gorm:"type:text;not null;default:'pending'" json:"status"`

	// Opaque document references; validation happens upstream of the core.
	LogoRef        string `gorm:"type:text" json:"logo_ref,omitempty"`
	TaxDocumentRef string `gorm:"type:text" json:"tax_document_ref,omitempty"`

	ReviewerID *uuid.UUID `gorm:"type:uuid" json:"reviewer_id,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
