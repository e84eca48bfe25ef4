// internal/service/notification.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/google/uuid"
)

// NotificationService derives notification view-objects from the lifecycle
// collections. Derivation never mutates the source entities; read state
// lives in a separate acknowledgment set so the same notification is not
// re-surfaced as unread after regeneration.
type NotificationService struct {
	applications repository.ApplicationRepositoryIface
	reports      repository.ReportRepositoryIface
	workshops    repository.WorkshopRepositoryIface
	cycles       repository.CycleRepositoryIface
	reads        repository.NotificationReadRepositoryIface
	cache        *CacheService
	now          func() time.Time
}

func NewNotificationService(
	applications repository.ApplicationRepositoryIface,
	reports repository.ReportRepositoryIface,
	workshops repository.WorkshopRepositoryIface,
	cycles repository.CycleRepositoryIface,
	reads repository.NotificationReadRepositoryIface,
	cache *CacheService,
) *NotificationService {
	return &NotificationService{
		applications: applications,
		reports:      reports,
		workshops:    workshops,
		cycles:       cycles,
		reads:        reads,
		cache:        cache,
		now:          time.Now,
	}
}

// ListFor derives the notification list for the acting user, newest first.
// companyID scopes company-role derivation and is ignored for other roles.
func (s *NotificationService) ListFor(ctx context.Context, actor model.Actor, companyID *uuid.UUID) ([]model.Notification, error) {
	cacheKey := fmt.Sprintf("notifications:%s:%s", actor.Role, actor.ID)

	var notifications []model.Notification
	if s.cache != nil {
		if err := s.cache.Get(ctx, cacheKey, &notifications); err == nil {
			return s.applyReadState(ctx, actor, notifications)
		}
	}

	var err error
	switch actor.Role {
	case model.RoleCompany:
		if companyID == nil {
			return nil, domain.ErrCompanyNotFound
		}
		notifications, err = s.deriveForCompany(ctx, *companyID)
	case model.RoleStudent:
		notifications, err = s.deriveForStudent(ctx, actor.ID)
	default:
		notifications = nil
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, notifications)
	}

	return s.applyReadState(ctx, actor, notifications)
}

func (s *NotificationService) deriveForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Notification, error) {
	apps, err := s.applications.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var out []model.Notification
	for _, app := range apps {
		if app.Status != model.ApplicationStatusPending {
			continue
		}
		out = append(out, model.Notification{
			Key:     fmt.Sprintf("application:new:%s", app.ID),
			Type:    model.NotificationTypeApplication,
			Title:   "New application received",
			Message: "A student applied to one of your internship postings.",
			Date:    app.AppliedAt,
		})
	}
	return out, nil
}

func (s *NotificationService) deriveForStudent(ctx context.Context, studentID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification

	reports, err := s.reports.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		if report.ReviewedAt == nil {
			continue
		}
		out = append(out, model.Notification{
			Key:     fmt.Sprintf("report:%s:%s", report.ID, report.Status),
			Type:    model.NotificationTypeReport,
			Title:   "Internship report reviewed",
			Message: fmt.Sprintf("Your report %q was marked %s.", report.Title, report.Status),
			Date:    *report.ReviewedAt,
		})
	}

	now := s.now()
	workshops, err := s.workshops.FindUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, workshop := range workshops {
		out = append(out, model.Notification{
			Key:     fmt.Sprintf("workshop:%s", workshop.ID),
			Type:    model.NotificationTypeWorkshop,
			Title:   "Upcoming workshop",
			Message: fmt.Sprintf("%s starts %s.", workshop.Name, workshop.StartsAt.Format("Jan 2, 2006 15:04")),
			Date:    workshop.StartsAt,
		})
	}

	cycle, err := s.cycles.FindCurrent(ctx, now)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	} else {
		if cycle.StartsAt.After(now) {
			out = append(out, model.Notification{
				Key:     fmt.Sprintf("cycle:%s:upcoming", cycle.ID),
				Type:    model.NotificationTypeCycle,
				Title:   "Internship cycle opens soon",
				Message: fmt.Sprintf("%s opens %s.", cycle.Name, cycle.StartsAt.Format("Jan 2, 2006")),
				Date:    cycle.StartsAt,
			})
		} else {
			out = append(out, model.Notification{
				Key:     fmt.Sprintf("cycle:%s:open", cycle.ID),
				Type:    model.NotificationTypeCycle,
				Title:   "Internship cycle is open",
				Message: fmt.Sprintf("%s is open until %s.", cycle.Name, cycle.EndsAt.Format("Jan 2, 2006")),
				Date:    cycle.StartsAt,
			})
		}
	}

	return out, nil
}

// applyReadState marks the read flag from the acknowledgment set without
// touching the derived records in cache.
func (s *NotificationService) applyReadState(ctx context.Context, actor model.Actor, notifications []model.Notification) ([]model.Notification, error) {
	readKeys, err := s.reads.ReadKeys(ctx, actor.ID, actor.Role)
	if err != nil {
		return nil, err
	}

	out := make([]model.Notification, len(notifications))
	for i, n := range notifications {
		n.Read = readKeys[n.Key]
		out[i] = n
	}
	return out, nil
}

// MarkRead acknowledges a single notification key for the acting user.
func (s *NotificationService) MarkRead(ctx context.Context, actor model.Actor, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return s.reads.MarkRead(ctx, actor.ID, actor.Role, key)
}

// MarkAllRead acknowledges every currently-derivable notification for the
// acting user.
func (s *NotificationService) MarkAllRead(ctx context.Context, actor model.Actor, companyID *uuid.UUID) error {
	notifications, err := s.ListFor(ctx, actor, companyID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(notifications))
	for _, n := range notifications {
		if !n.Read {
			keys = append(keys, n.Key)
		}
	}
	return s.reads.MarkManyRead(ctx, actor.ID, actor.Role, keys)
}
