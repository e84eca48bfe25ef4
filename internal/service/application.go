// internal/service/application.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ApplicationService handles application intake and reads. Status changes
// after intake belong to the ApplicationLifecycleService.
type ApplicationService struct {
	repo        repository.ApplicationRepositoryIface
	internships repository.InternshipRepositoryIface
	validate    *validator.Validate
}

func NewApplicationService(repo repository.ApplicationRepositoryIface, internships repository.InternshipRepositoryIface) *ApplicationService {
	return &ApplicationService{
		repo:        repo,
		internships: internships,
		validate:    validator.New(),
	}
}

type ApplyInput struct {
	InternshipID       uuid.UUID `json:"internship_id" validate:"required"`
	CoverLetter        string    `json:"cover_letter" validate:"required"`
	WhyApplying        string    `json:"why_applying"`
	RelevantExperience string    `json:"relevant_experience"`
	Documents          []string  `json:"documents"`
}

// Apply creates a pending application for the acting student. Closed
// postings, passed deadlines, and duplicate applications are rejected.
func (s *ApplicationService) Apply(ctx context.Context, input ApplyInput, actor model.Actor) (*model.Application, error) {
	if actor.Role != model.RoleStudent {
		return nil, domain.ErrUnauthorized
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	internship, err := s.internships.FindByID(ctx, input.InternshipID)
	if err != nil {
		return nil, err
	}
	if internship.Status != model.InternshipStatusActive {
		return nil, domain.ErrInternshipClosed
	}
	if !internship.Deadline.IsZero() && time.Now().After(internship.Deadline) {
		return nil, domain.ErrDeadlinePassed
	}

	if _, err := s.repo.FindByInternshipAndStudent(ctx, input.InternshipID, actor.ID); err == nil {
		return nil, domain.ErrAlreadyApplied
	} else if !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}

	app := &model.Application{
		InternshipID:       input.InternshipID,
		StudentID:          actor.ID,
		Status:             model.ApplicationStatusPending,
		CoverLetter:        input.CoverLetter,
		WhyApplying:        input.WhyApplying,
		RelevantExperience: input.RelevantExperience,
		AppliedAt:          time.Now(),
	}

	if len(input.Documents) > 0 {
		docs, err := marshalDocumentRefs(input.Documents)
		if err != nil {
			return nil, err
		}
		app.Documents = docs
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	return app, nil
}

func marshalDocumentRefs(refs []string) (datatypes.JSON, error) {
	data, err := json.Marshal(refs)
	if err != nil {
		return nil, fmt.Errorf("marshaling document refs: %w", err)
	}
	return datatypes.JSON(data), nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Application, error) {
	return s.repo.FindByStudent(ctx, studentID)
}

func (s *ApplicationService) ListByInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error) {
	return s.repo.FindByInternship(ctx, internshipID)
}

func (s *ApplicationService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Application, error) {
	return s.repo.FindByCompany(ctx, companyID)
}
