// internal/service/report_lifecycle.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusbridge/internhub/internal/audit"
	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReportLifecycleService owns the draft -> submitted -> reviewed flow for
// internship reports and the upsert discipline for both evaluation kinds.
type ReportLifecycleService struct {
	reports     repository.ReportRepositoryIface
	evaluations repository.EvaluationRepositoryIface
	trail       audit.Trail
	validate    *validator.Validate
	now         func() time.Time
}

func NewReportLifecycleService(
	reports repository.ReportRepositoryIface,
	evaluations repository.EvaluationRepositoryIface,
	trail audit.Trail,
) *ReportLifecycleService {
	if trail == nil {
		trail = &audit.NoOpTrail{}
	}
	return &ReportLifecycleService{
		reports:     reports,
		evaluations: evaluations,
		trail:       trail,
		validate:    validator.New(),
		now:         time.Now,
	}
}

type SaveDraftInput struct {
	InternshipID   uuid.UUID `json:"internship_id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	Introduction   string    `json:"introduction"`
	Body           string    `json:"body"`
	HelpfulCourses []string  `json:"helpful_courses"`
}

// SaveDraft upserts the student's report draft for an internship. A report
// that has been submitted is read-only to the student.
func (s *ReportLifecycleService) SaveDraft(ctx context.Context, input SaveDraftInput, actor model.Actor) (*model.Report, error) {
	if actor.Role != model.RoleStudent {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.reports.FindByKey(ctx, actor.ID, input.InternshipID)
	if err != nil && !errors.Is(err, domain.ErrReportNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsSubmitted {
		return nil, domain.ErrReportSubmitted
	}

	report := &model.Report{
		StudentID:      actor.ID,
		InternshipID:   input.InternshipID,
		Title:          input.Title,
		Introduction:   input.Introduction,
		Body:           input.Body,
		HelpfulCourses: pq.StringArray(input.HelpfulCourses),
		Status:         model.ReportStatusPending,
	}

	if err := s.reports.Upsert(ctx, report); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}

	return report, nil
}

// Submit finalizes a report. Submission requires the student's company
// evaluation for the same internship to exist; without it the report is
// not finalizable. On success the report enters the faculty review queue
// with status pending.
func (s *ReportLifecycleService) Submit(ctx context.Context, reportID uuid.UUID, actor model.Actor) (*model.Report, error) {
	if actor.Role != model.RoleStudent {
		return nil, domain.ErrUnauthorized
	}

	report, err := s.reports.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.StudentID != actor.ID {
		return nil, domain.ErrUnauthorized
	}
	if report.IsSubmitted {
		// Submitting an already-submitted report is a no-op.
		return report, nil
	}

	if _, err := s.evaluations.FindStudentEvaluation(ctx, report.StudentID, report.InternshipID); err != nil {
		if errors.Is(err, domain.ErrEvaluationNotFound) {
			return nil, domain.ErrNotFinalizable
		}
		return nil, err
	}

	now := s.now()
	report.IsSubmitted = true
	report.SubmittedAt = &now
	report.Status = model.ReportStatusPending

	if err := s.reports.UpdateVersioned(ctx, report); err != nil {
		return nil, err
	}

	if err := s.trail.RecordTransition(ctx, audit.EntityReport, report.ID,
		"draft", "submitted", actor, "", nil); err != nil {
		slog.ErrorContext(ctx, "recording report submission", "error", err, "reportID", report.ID)
	}

	return report, nil
}

type ReviewInput struct {
	ReportID uuid.UUID
	Status   model.ReportStatus
	Comment  string
}

// Review records a faculty decision on a submitted report. Rejections and
// flags carry a mandatory comment; on failure the report is left untouched.
func (s *ReportLifecycleService) Review(ctx context.Context, input ReviewInput, actor model.Actor) (*model.Report, error) {
	if actor.Role != model.RoleFaculty {
		return nil, domain.ErrUnauthorized
	}

	status := model.ReportStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if !model.KnownReportStatus(status) || status == model.ReportStatusPending {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, input.Status)
	}

	comment := strings.TrimSpace(input.Comment)
	if (status == model.ReportStatusRejected || status == model.ReportStatusFlagged) && comment == "" {
		return nil, domain.ErrMissingComment
	}

	report, err := s.reports.FindByID(ctx, input.ReportID)
	if err != nil {
		return nil, err
	}
	if !report.IsSubmitted {
		return nil, domain.ErrReportNotSubmitted
	}
	if report.Status == status {
		return report, nil
	}

	from := report.Status
	now := s.now()
	report.Status = status
	report.StatusComment = comment
	report.ReviewerID = &actor.ID
	report.ReviewerName = actor.Name
	report.ReviewedAt = &now

	if err := s.reports.UpdateVersioned(ctx, report); err != nil {
		return nil, err
	}

	if err := s.trail.RecordTransition(ctx, audit.EntityReport, report.ID,
		string(from), string(status), actor, comment, nil); err != nil {
		slog.ErrorContext(ctx, "recording report review", "error", err, "reportID", report.ID)
	}

	return report, nil
}

func (s *ReportLifecycleService) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	return s.reports.FindByID(ctx, id)
}

func (s *ReportLifecycleService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Report, error) {
	return s.reports.FindByStudent(ctx, studentID)
}

// ReviewQueue returns submitted reports for faculty, newest first.
func (s *ReportLifecycleService) ReviewQueue(ctx context.Context, actor model.Actor) ([]*model.Report, error) {
	if actor.Role != model.RoleFaculty && actor.Role != model.RoleScad {
		return nil, domain.ErrUnauthorized
	}
	return s.reports.FindSubmitted(ctx)
}
