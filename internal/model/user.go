// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleCompany UserRole = "company"
	RoleFaculty UserRole = "faculty"
	RoleScad    UserRole = "scad"
)

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName string     `gorm:"type:text;not null" json:"first_name"`
	LastName  string     `gorm:"type:text" json:"last_name"`
	Role      UserRole   `gorm:"type:text;not null;default:'student'" json:"role"`
	Status    UserStatus `gorm:"type:text;not null;default:'pending'" json:"status"`

	// Student-only profile fields; zero-valued for other roles.
	Major    string `gorm:"type:text" json:"major,omitempty"`
	Semester int    `json:"semester,omitempty"`

	// CompanyID links company-role users to their registration record.
	CompanyID *uuid.UUID `gorm:"type:uuid" json:"company_id,omitempty"`

	PasswordHash     string `gorm:"type:text;not null" json:"-"`
	VerificationCode string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor identifies the user performing a lifecycle operation. It is
// populated from verified token claims and trusted as-is downstream.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
	Name string
}
