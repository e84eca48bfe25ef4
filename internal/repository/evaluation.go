// internal/repository/evaluation.go
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

type EvaluationRepositoryIface interface {
	UpsertCompanyEvaluation(ctx context.Context, eval *model.CompanyEvaluation) error
	FindCompanyEvaluation(ctx context.Context, studentID, internshipID, companyID uuid.UUID) (*model.CompanyEvaluation, error)
	FindCompanyEvaluationsByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.CompanyEvaluation, error)

	UpsertStudentEvaluation(ctx context.Context, eval *model.StudentEvaluation) error
	FindStudentEvaluation(ctx context.Context, studentID, internshipID uuid.UUID) (*model.StudentEvaluation, error)
	FindStudentEvaluations(ctx context.Context) ([]*model.StudentEvaluation, error)
	DeleteStudentEvaluation(ctx context.Context, studentID, internshipID uuid.UUID) error
}

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// UpsertCompanyEvaluation enforces the one-evaluation-per-(student,
// internship, company) invariant by finding the composite key before
// writing.
func (r *EvaluationRepository) UpsertCompanyEvaluation(ctx context.Context, eval *model.CompanyEvaluation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CompanyEvaluation
		err := tx.Where("student_id = ? AND internship_id = ? AND company_id = ?",
			eval.StudentID, eval.InternshipID, eval.CompanyID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(eval).Error; createErr != nil {
					return fmt.Errorf("creating company evaluation: %w", createErr)
				}
				return nil
			}
			return fmt.Errorf("finding company evaluation: %w", err)
		}

		eval.ID = existing.ID
		eval.CreatedAt = existing.CreatedAt
		if saveErr := tx.Save(eval).Error; saveErr != nil {
			return fmt.Errorf("updating company evaluation: %w", saveErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *EvaluationRepository) FindCompanyEvaluation(ctx context.Context, studentID, internshipID, companyID uuid.UUID) (*model.CompanyEvaluation, error) {
	var eval model.CompanyEvaluation
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND internship_id = ? AND company_id = ?", studentID, internshipID, companyID).
		First(&eval)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to find company evaluation: %w", result.Error)
	}
	return &eval, nil
}

func (r *EvaluationRepository) FindCompanyEvaluationsByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.CompanyEvaluation, error) {
	var evals []*model.CompanyEvaluation
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("updated_at DESC").
		Find(&evals)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find company evaluations: %w", result.Error)
	}
	return evals, nil
}

func (r *EvaluationRepository) UpsertStudentEvaluation(ctx context.Context, eval *model.StudentEvaluation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.StudentEvaluation
		err := tx.Where("student_id = ? AND internship_id = ?", eval.StudentID, eval.InternshipID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if createErr := tx.Create(eval).Error; createErr != nil {
					return fmt.Errorf("creating student evaluation: %w", createErr)
				}
				return nil
			}
			return fmt.Errorf("finding student evaluation: %w", err)
		}

		eval.ID = existing.ID
		eval.CreatedAt = existing.CreatedAt
		if saveErr := tx.Save(eval).Error; saveErr != nil {
			return fmt.Errorf("updating student evaluation: %w", saveErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *EvaluationRepository) FindStudentEvaluation(ctx context.Context, studentID, internshipID uuid.UUID) (*model.StudentEvaluation, error) {
	var eval model.StudentEvaluation
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		First(&eval)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to find student evaluation: %w", result.Error)
	}
	return &eval, nil
}

// FindStudentEvaluations returns every student evaluation. Consumed by the
// SCAD aggregate statistics (top rated companies).
func (r *EvaluationRepository) FindStudentEvaluations(ctx context.Context) ([]*model.StudentEvaluation, error) {
	var evals []*model.StudentEvaluation
	result := r.db.WithContext(ctx).Find(&evals)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find student evaluations: %w", result.Error)
	}
	return evals, nil
}

func (r *EvaluationRepository) DeleteStudentEvaluation(ctx context.Context, studentID, internshipID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Delete(&model.StudentEvaluation{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete student evaluation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEvaluationNotFound
	}
	return nil
}
