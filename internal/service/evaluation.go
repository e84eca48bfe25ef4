// internal/service/evaluation.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EvaluationService owns both evaluation kinds. Saves are upserts on the
// composite key; a student evaluation that backs a submitted report cannot
// be deleted.
type EvaluationService struct {
	repo     repository.EvaluationRepositoryIface
	reports  repository.ReportRepositoryIface
	validate *validator.Validate
}

func NewEvaluationService(repo repository.EvaluationRepositoryIface, reports repository.ReportRepositoryIface) *EvaluationService {
	return &EvaluationService{
		repo:     repo,
		reports:  reports,
		validate: validator.New(),
	}
}

type CompanyEvaluationInput struct {
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	InternshipID    uuid.UUID `json:"internship_id" validate:"required"`
	Rating          int       `json:"rating" validate:"required,min=1,max=5"`
	Comments        string    `json:"comments"`
	SupervisorName  string    `json:"supervisor_name"`
	SupervisorEmail string    `json:"supervisor_email" validate:"omitempty,email"`
}

// SaveCompanyEvaluation upserts a company's evaluation of a student intern.
// The acting company user must belong to a registered company.
func (s *EvaluationService) SaveCompanyEvaluation(ctx context.Context, input CompanyEvaluationInput, actor model.Actor, companyID uuid.UUID) (*model.CompanyEvaluation, error) {
	if actor.Role != model.RoleCompany {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	eval := &model.CompanyEvaluation{
		StudentID:       input.StudentID,
		InternshipID:    input.InternshipID,
		CompanyID:       companyID,
		Rating:          input.Rating,
		Comments:        input.Comments,
		SupervisorName:  input.SupervisorName,
		SupervisorEmail: input.SupervisorEmail,
	}

	if err := s.repo.UpsertCompanyEvaluation(ctx, eval); err != nil {
		return nil, fmt.Errorf("saving company evaluation: %w", err)
	}
	return eval, nil
}

type StudentEvaluationInput struct {
	InternshipID uuid.UUID `json:"internship_id" validate:"required"`
	Comments     string    `json:"comments" validate:"required"`
	Recommend    bool      `json:"recommend"`
}

// SaveStudentEvaluation upserts a student's evaluation of the company
// behind an internship.
func (s *EvaluationService) SaveStudentEvaluation(ctx context.Context, input StudentEvaluationInput, actor model.Actor) (*model.StudentEvaluation, error) {
	if actor.Role != model.RoleStudent {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	eval := &model.StudentEvaluation{
		StudentID:    actor.ID,
		InternshipID: input.InternshipID,
		Comments:     input.Comments,
		Recommend:    input.Recommend,
	}

	if err := s.repo.UpsertStudentEvaluation(ctx, eval); err != nil {
		return nil, fmt.Errorf("saving student evaluation: %w", err)
	}
	return eval, nil
}

// DeleteStudentEvaluation removes a student's evaluation unless a
// submitted report depends on it. Deleting the evaluation out from under a
// submitted report would orphan the report's finalized state.
func (s *EvaluationService) DeleteStudentEvaluation(ctx context.Context, internshipID uuid.UUID, actor model.Actor) error {
	if actor.Role != model.RoleStudent {
		return domain.ErrUnauthorized
	}

	report, err := s.reports.FindByKey(ctx, actor.ID, internshipID)
	if err != nil && !errors.Is(err, domain.ErrReportNotFound) {
		return err
	}
	if report != nil && report.IsSubmitted {
		return domain.ErrEvaluationInUse
	}

	return s.repo.DeleteStudentEvaluation(ctx, actor.ID, internshipID)
}

func (s *EvaluationService) GetStudentEvaluation(ctx context.Context, studentID, internshipID uuid.UUID) (*model.StudentEvaluation, error) {
	return s.repo.FindStudentEvaluation(ctx, studentID, internshipID)
}

func (s *EvaluationService) ListCompanyEvaluations(ctx context.Context, companyID uuid.UUID) ([]*model.CompanyEvaluation, error) {
	return s.repo.FindCompanyEvaluationsByCompany(ctx, companyID)
}
