// internal/service/internship.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InternshipService manages postings. Only users of an accepted company may
// post or edit, and only within their own company.
type InternshipService struct {
	repo      repository.InternshipRepositoryIface
	companies repository.CompanyRepositoryIface
	validate  *validator.Validate
}

func NewInternshipService(repo repository.InternshipRepositoryIface, companies repository.CompanyRepositoryIface) *InternshipService {
	return &InternshipService{
		repo:      repo,
		companies: companies,
		validate:  validator.New(),
	}
}

type InternshipInput struct {
	Title        string     `json:"title" validate:"required"`
	Department   string     `json:"department"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Location     string     `json:"location"`
	Duration     string     `json:"duration" validate:"required"`
	Paid         bool       `json:"paid"`
	Salary       string     `json:"salary"`
	Deadline     time.Time  `json:"deadline" validate:"required"`
	StartDate    *time.Time `json:"start_date"`
}

// Post creates an internship for the acting company user's company.
func (s *InternshipService) Post(ctx context.Context, input InternshipInput, actor model.Actor, companyID uuid.UUID) (*model.Internship, error) {
	if actor.Role != model.RoleCompany {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.Status != model.CompanyStatusAccepted {
		return nil, domain.ErrCompanyNotAccepted
	}

	internship := &model.Internship{
		CompanyID:    companyID,
		Title:        input.Title,
		Department:   input.Department,
		Description:  input.Description,
		Requirements: pq.StringArray(input.Requirements),
		Location:     input.Location,
		Duration:     input.Duration,
		Paid:         input.Paid,
		Salary:       input.Salary,
		Deadline:     input.Deadline,
		StartDate:    input.StartDate,
		Status:       model.InternshipStatusActive,
	}

	if err := s.repo.Create(ctx, internship); err != nil {
		return nil, fmt.Errorf("creating internship: %w", err)
	}
	return internship, nil
}

// Update edits a posting owned by the acting company.
func (s *InternshipService) Update(ctx context.Context, id uuid.UUID, input InternshipInput, actor model.Actor, companyID uuid.UUID) (*model.Internship, error) {
	internship, err := s.authorizeOwner(ctx, id, actor, companyID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	internship.Title = input.Title
	internship.Department = input.Department
	internship.Description = input.Description
	internship.Requirements = pq.StringArray(input.Requirements)
	internship.Location = input.Location
	internship.Duration = input.Duration
	internship.Paid = input.Paid
	internship.Salary = input.Salary
	internship.Deadline = input.Deadline
	internship.StartDate = input.StartDate

	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Close marks a posting closed without deleting its applications.
func (s *InternshipService) Close(ctx context.Context, id uuid.UUID, actor model.Actor, companyID uuid.UUID) (*model.Internship, error) {
	internship, err := s.authorizeOwner(ctx, id, actor, companyID)
	if err != nil {
		return nil, err
	}

	internship.Status = model.InternshipStatusClosed
	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Delete removes a posting and its applications.
func (s *InternshipService) Delete(ctx context.Context, id uuid.UUID, actor model.Actor, companyID uuid.UUID) error {
	if _, err := s.authorizeOwner(ctx, id, actor, companyID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *InternshipService) Get(ctx context.Context, id uuid.UUID) (*model.Internship, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InternshipService) authorizeOwner(ctx context.Context, id uuid.UUID, actor model.Actor, companyID uuid.UUID) (*model.Internship, error) {
	if actor.Role != model.RoleCompany {
		return nil, domain.ErrUnauthorized
	}

	internship, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship.CompanyID != companyID {
		return nil, domain.ErrUnauthorized
	}
	return internship, nil
}
