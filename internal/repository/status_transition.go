// internal/repository/status_transition.go
package repository

import (
	"context"
	"fmt"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusTransitionRepositoryIface interface {
	Append(ctx context.Context, row *model.StatusTransition) error
	FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*model.StatusTransition, error)
}

type StatusTransitionRepository struct {
	db *gorm.DB
}

func NewStatusTransitionRepository(db *gorm.DB) *StatusTransitionRepository {
	return &StatusTransitionRepository{db: db}
}

func (r *StatusTransitionRepository) Append(ctx context.Context, row *model.StatusTransition) error {
	result := r.db.WithContext(ctx).Create(row)
	if result.Error != nil {
		return fmt.Errorf("failed to append status transition: %w", result.Error)
	}
	return nil
}

func (r *StatusTransitionRepository) FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*model.StatusTransition, error) {
	var rows []*model.StatusTransition
	result := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find status transitions: %w", result.Error)
	}
	return rows, nil
}
