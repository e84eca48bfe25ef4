// internal/repository/report.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepositoryIface interface {
	Upsert(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	FindByKey(ctx context.Context, studentID, internshipID uuid.UUID) (*model.Report, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Report, error)
	FindSubmitted(ctx context.Context) ([]*model.Report, error)
	UpdateVersioned(ctx context.Context, report *model.Report) error
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Upsert writes the draft keyed by (student_id, internship_id). An existing
// row is overwritten in place; the id of the stored row is preserved.
func (r *ReportRepository) Upsert(ctx context.Context, report *model.Report) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Report
		err := tx.Where("student_id = ? AND internship_id = ?", report.StudentID, report.InternshipID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(report).Error; createErr != nil {
					return fmt.Errorf("creating report: %w", createErr)
				}
				return nil
			}
			return fmt.Errorf("finding report: %w", err)
		}

		report.ID = existing.ID
		report.Version = existing.Version
		report.CreatedAt = existing.CreatedAt
		if saveErr := tx.Save(report).Error; saveErr != nil {
			return fmt.Errorf("updating report: %w", saveErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.db.WithContext(ctx).First(&report, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", result.Error)
	}
	return &report, nil
}

func (r *ReportRepository) FindByKey(ctx context.Context, studentID, internshipID uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		First(&report)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", result.Error)
	}
	return &report, nil
}

func (r *ReportRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Report, error) {
	var reports []*model.Report
	result := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("updated_at DESC").
		Find(&reports)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find reports: %w", result.Error)
	}
	return reports, nil
}

// FindSubmitted returns all submitted reports, newest submission first.
// This is the faculty review queue.
func (r *ReportRepository) FindSubmitted(ctx context.Context) ([]*model.Report, error) {
	var reports []*model.Report
	result := r.db.WithContext(ctx).
		Where("is_submitted = ?", true).
		Order("submitted_at DESC").
		Find(&reports)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find submitted reports: %w", result.Error)
	}
	return reports, nil
}

// UpdateVersioned saves submission/review state guarded by the version
// column. A concurrent writer surfaces domain.ErrConflict.
func (r *ReportRepository) UpdateVersioned(ctx context.Context, report *model.Report) error {
	current := report.Version
	report.Version = current + 1

	result := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("id = ? AND version = ?", report.ID, current).
		Select("is_submitted", "submitted_at", "status", "status_comment",
			"reviewer_id", "reviewer_name", "reviewed_at", "version", "updated_at").
		Updates(report)
	if result.Error != nil {
		report.Version = current
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		report.Version = current
		return domain.ErrConflict
	}
	return nil
}
