// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByStatus(ctx context.Context, status model.CompanyStatus) ([]*model.Company, error)
	FindAll(ctx context.Context) ([]*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		return fmt.Errorf("failed to create company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByStatus(ctx context.Context, status model.CompanyStatus) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find companies: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).Order("name ASC").Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all companies: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Save(company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}
