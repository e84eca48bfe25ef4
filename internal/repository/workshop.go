// internal/repository/workshop.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkshopRepositoryIface interface {
	Create(ctx context.Context, workshop *model.Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workshop, error)
	FindUpcoming(ctx context.Context, after time.Time) ([]*model.Workshop, error)
	Update(ctx context.Context, workshop *model.Workshop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CycleRepositoryIface interface {
	Create(ctx context.Context, cycle *model.Cycle) error
	FindCurrent(ctx context.Context, at time.Time) (*model.Cycle, error)
	FindAll(ctx context.Context) ([]*model.Cycle, error)
}

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

func (r *WorkshopRepository) Create(ctx context.Context, workshop *model.Workshop) error {
	result := r.db.WithContext(ctx).Create(workshop)
	if result.Error != nil {
		return fmt.Errorf("failed to create workshop: %w", result.Error)
	}
	return nil
}

func (r *WorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Workshop, error) {
	var workshop model.Workshop
	result := r.db.WithContext(ctx).First(&workshop, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workshop: %w", result.Error)
	}
	return &workshop, nil
}

func (r *WorkshopRepository) FindUpcoming(ctx context.Context, after time.Time) ([]*model.Workshop, error) {
	var workshops []*model.Workshop
	result := r.db.WithContext(ctx).
		Where("starts_at > ?", after).
		Order("starts_at ASC").
		Find(&workshops)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find upcoming workshops: %w", result.Error)
	}
	return workshops, nil
}

func (r *WorkshopRepository) Update(ctx context.Context, workshop *model.Workshop) error {
	result := r.db.WithContext(ctx).Save(workshop)
	if result.Error != nil {
		return fmt.Errorf("failed to update workshop: %w", result.Error)
	}
	return nil
}

func (r *WorkshopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Workshop{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete workshop: %w", result.Error)
	}
	return nil
}

type CycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

func (r *CycleRepository) Create(ctx context.Context, cycle *model.Cycle) error {
	result := r.db.WithContext(ctx).Create(cycle)
	if result.Error != nil {
		return fmt.Errorf("failed to create cycle: %w", result.Error)
	}
	return nil
}

// FindCurrent returns the cycle whose window covers the given instant, or
// the next one to open.
func (r *CycleRepository) FindCurrent(ctx context.Context, at time.Time) (*model.Cycle, error) {
	var cycle model.Cycle
	result := r.db.WithContext(ctx).
		Where("ends_at > ?", at).
		Order("starts_at ASC").
		First(&cycle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cycle: %w", result.Error)
	}
	return &cycle, nil
}

func (r *CycleRepository) FindAll(ctx context.Context) ([]*model.Cycle, error) {
	var cycles []*model.Cycle
	result := r.db.WithContext(ctx).Order("starts_at DESC").Find(&cycles)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find cycles: %w", result.Error)
	}
	return cycles, nil
}
