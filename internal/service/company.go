// internal/service/company.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusbridge/internhub/internal/audit"
	"github.com/campusbridge/internhub/internal/config"
	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/email"
	"github.com/campusbridge/internhub/internal/email/mailer"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompanyService handles company registration and the SCAD review flow.
type CompanyService struct {
	repo         repository.CompanyRepositoryIface
	emailService *email.Service
	trail        audit.Trail
	config       *config.Config
	validate     *validator.Validate
	now          func() time.Time
}

func NewCompanyService(
	repo repository.CompanyRepositoryIface,
	emailService *email.Service,
	trail audit.Trail,
	config *config.Config,
) *CompanyService {
	if trail == nil {
		trail = &audit.NoOpTrail{}
	}
	return &CompanyService{
		repo:         repo,
		emailService: emailService,
		trail:        trail,
		config:       config,
		validate:     validator.New(),
		now:          time.Now,
	}
}

type RegisterCompanyInput struct {
	Name           string            `json:"name" validate:"required"`
	Industry       string            `json:"industry" validate:"required"`
	Size           model.CompanySize `json:"size" validate:"required,oneof=small medium large corporate"`
	Email          string            `json:"email" validate:"required,email"`
	LogoRef        string            `json:"logo_ref"`
	TaxDocumentRef string            `json:"tax_document_ref"`
}

// Register submits a company registration for SCAD review.
func (s *CompanyService) Register(ctx context.Context, input RegisterCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company := &model.Company{
		Name:           input.Name,
		Industry:       input.Industry,
		Size:           input.Size,
		Email:          input.Email,
		LogoRef:        input.LogoRef,
		TaxDocumentRef: input.TaxDocumentRef,
		Status:         model.CompanyStatusPending,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("registering company: %w", err)
	}
	return company, nil
}

type CompanyDecisionInput struct {
	CompanyID uuid.UUID `json:"-"`
	Accept    bool      `json:"accept"`
}

// Decide records the SCAD office's decision on a pending registration and
// notifies the company contact. A registration can only be decided once.
func (s *CompanyService) Decide(ctx context.Context, input CompanyDecisionInput, actor model.Actor) (*model.Company, error) {
	if actor.Role != model.RoleScad {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.repo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.Status != model.CompanyStatusPending {
		return nil, domain.ErrAlreadyDecided
	}

	from := company.Status
	now := s.now()
	if input.Accept {
		company.Status = model.CompanyStatusAccepted
	} else {
		company.Status = model.CompanyStatusRejected
	}
	company.ReviewerID = &actor.ID
	company.DecidedAt = &now

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("updating company: %w", err)
	}

	if err := s.trail.RecordTransition(ctx, audit.EntityCompany, company.ID,
		string(from), string(company.Status), actor, "", nil); err != nil {
		slog.ErrorContext(ctx, "recording company decision", "error", err, "companyID", company.ID)
	}

	if s.emailService != nil {
		if err := mailer.SendCompanyDecisionEmail(s.emailService, company.Email, company.Name,
			input.Accept, s.config.BaseURL); err != nil {
			slog.ErrorContext(ctx, "sending company decision email", "error", err, "companyID", company.ID)
		}
	}

	return company, nil
}

// Get returns a single registration record.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// ListPending returns registrations awaiting review, oldest first.
func (s *CompanyService) ListPending(ctx context.Context, actor model.Actor) ([]*model.Company, error) {
	if actor.Role != model.RoleScad {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.FindByStatus(ctx, model.CompanyStatusPending)
}

func (s *CompanyService) ListAll(ctx context.Context) ([]*model.Company, error) {
	return s.repo.FindAll(ctx)
}
