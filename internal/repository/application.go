// internal/repository/application.go
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

type ApplicationRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByInternshipAndStudent(ctx context.Context, internshipID, studentID uuid.UUID) (*model.Application, error)
	FindByInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Application, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Application, error)
	UpdateVersioned(ctx context.Context, app *model.Application) error
	CountByInternship(ctx context.Context, internshipID uuid.UUID) (int64, error)
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *ApplicationRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	result := r.db.WithContext(ctx).Create(app)
	if result.Error != nil {
		return fmt.Errorf("failed to create application: %w", result.Error)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	result := r.db.WithContext(ctx).First(&app, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByInternshipAndStudent(ctx context.Context, internshipID, studentID uuid.UUID) (*model.Application, error) {
	var app model.Application
	result := r.db.WithContext(ctx).
		Where("internship_id = ? AND student_id = ?", internshipID, studentID).
		First(&app)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error) {
	var apps []*model.Application
	result := r.db.WithContext(ctx).
		Where("internship_id = ?", internshipID).
		Order("applied_at DESC").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find applications: %w", result.Error)
	}
	return apps, nil
}

func (r *ApplicationRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*model.Application, error) {
	var apps []*model.Application
	result := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find applications: %w", result.Error)
	}
	return apps, nil
}

// FindByCompany aggregates applications across all internships posted by
// the given company.
func (r *ApplicationRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Application, error) {
	var apps []*model.Application
	result := r.db.WithContext(ctx).
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("internships.company_id = ?", companyID).
		Order("applications.applied_at DESC").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find company applications: %w", result.Error)
	}
	return apps, nil
}

// UpdateVersioned saves the application guarded by its version column. The
// in-memory record must carry the version that was read; a row that was
// modified concurrently leaves RowsAffected at zero and surfaces
// domain.ErrConflict.
func (r *ApplicationRepository) UpdateVersioned(ctx context.Context, app *model.Application) error {
	current := app.Version
	app.Version = current + 1

	result := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND version = ?", app.ID, current).
		Select("status", "status_comment", "internship_start_date", "internship_end_date", "version", "updated_at").
		Updates(app)
	if result.Error != nil {
		app.Version = current
		return fmt.Errorf("failed to update application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		app.Version = current
		return domain.ErrConflict
	}
	return nil
}

// CountByInternship derives the applicant count for a posting. The count is
// never stored on the internship row.
func (r *ApplicationRepository) CountByInternship(ctx context.Context, internshipID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("internship_id = ?", internshipID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count applications: %w", result.Error)
	}
	return count, nil
}
