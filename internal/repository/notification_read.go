// internal/repository/notification_read.go
package repository

import (
	"context"
	"fmt"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationReadRepositoryIface interface {
	MarkRead(ctx context.Context, userID uuid.UUID, role model.UserRole, key string) error
	MarkManyRead(ctx context.Context, userID uuid.UUID, role model.UserRole, keys []string) error
	ReadKeys(ctx context.Context, userID uuid.UUID, role model.UserRole) (map[string]bool, error)
}

type NotificationReadRepository struct {
	db *gorm.DB
}

func NewNotificationReadRepository(db *gorm.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// MarkRead records an acknowledgment. Re-acknowledging the same key is a
// no-op.
func (r *NotificationReadRepository) MarkRead(ctx context.Context, userID uuid.UUID, role model.UserRole, key string) error {
	row := model.NotificationRead{UserID: userID, Role: role, Key: key}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	return nil
}

func (r *NotificationReadRepository) MarkManyRead(ctx context.Context, userID uuid.UUID, role model.UserRole, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	rows := make([]model.NotificationRead, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, model.NotificationRead{UserID: userID, Role: role, Key: key})
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return nil
}

func (r *NotificationReadRepository) ReadKeys(ctx context.Context, userID uuid.UUID, role model.UserRole) (map[string]bool, error) {
	var rows []model.NotificationRead
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load read keys: %w", result.Error)
	}

	keys := make(map[string]bool, len(rows))
	for _, row := range rows {
		keys[row.Key] = true
	}
	return keys, nil
}
