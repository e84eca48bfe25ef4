// internal/repository/internship.go
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

type InternshipRepositoryIface interface {
	Create(ctx context.Context, internship *model.Internship) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Internship, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error)
	FindAll(ctx context.Context) ([]*model.Internship, error)
	FindActive(ctx context.Context) ([]*model.Internship, error)
	Update(ctx context.Context, internship *model.Internship) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InternshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func (r *InternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	result := r.db.WithContext(ctx).Create(internship)
	if result.Error != nil {
		return fmt.Errorf("failed to create internship: %w", result.Error)
	}
	return nil
}

func (r *InternshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Internship, error) {
	var internship model.Internship
	result := r.db.WithContext(ctx).Preload("Company").First(&internship, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to find internship: %w", result.Error)
	}
	return &internship, nil
}

func (r *InternshipRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error) {
	var internships []*model.Internship
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&internships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find internships: %w", result.Error)
	}
	return internships, nil
}

func (r *InternshipRepository) FindAll(ctx context.Context) ([]*model.Internship, error) {
	var internships []*model.Internship
	result := r.db.WithContext(ctx).Preload("Company").Order("created_at DESC").Find(&internships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all internships: %w", result.Error)
	}
	return internships, nil
}

func (r *InternshipRepository) FindActive(ctx context.Context) ([]*model.Internship, error) {
	var internships []*model.Internship
	result := r.db.WithContext(ctx).
		Preload("Company").
		Where("status = ?", model.InternshipStatusActive).
		Order("deadline ASC").
		Find(&internships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find active internships: %w", result.Error)
	}
	return internships, nil
}

func (r *InternshipRepository) Update(ctx context.Context, internship *model.Internship) error {
	result := r.db.WithContext(ctx).Save(internship)
	if result.Error != nil {
		return fmt.Errorf("failed to update internship: %w", result.Error)
	}
	return nil
}

func (r *InternshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Applications referencing the posting go first.
		if err := tx.Where("internship_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return fmt.Errorf("deleting applications: %w", err)
		}
		if err := tx.Delete(&model.Internship{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting internship: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
