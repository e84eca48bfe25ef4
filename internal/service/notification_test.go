package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/mocks"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanyNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyUser := model.Actor{ID: uuid.New(), Role: model.RoleCompany, Name: "Acme Recruiting"}
	companyID := uuid.New()

	pendingApp := &model.Application{
		ID:        uuid.New(),
		Status:    model.ApplicationStatusPending,
		AppliedAt: time.Now().Add(-time.Hour),
	}
	acceptedApp := &model.Application{
		ID:        uuid.New(),
		Status:    model.ApplicationStatusAccepted,
		AppliedAt: time.Now().Add(-2 * time.Hour),
	}

	newService := func(apps *mocks.MockApplicationRepositoryIface, reads *mocks.MockNotificationReadRepositoryIface) *service.NotificationService {
		return service.NewNotificationService(
			apps,
			mocks.NewMockReportRepositoryIface(ctrl),
			mocks.NewMockWorkshopRepositoryIface(ctrl),
			mocks.NewMockCycleRepositoryIface(ctrl),
			reads,
			nil,
		)
	}

	t.Run("pending applications surface, decided ones do not", func(t *testing.T) {
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)

		apps.EXPECT().FindByCompany(gomock.Any(), companyID).
			Return([]*model.Application{pendingApp, acceptedApp}, nil)
		reads.EXPECT().ReadKeys(gomock.Any(), companyUser.ID, model.RoleCompany).
			Return(map[string]bool{}, nil)

		svc := newService(apps, reads)
		notifications, err := svc.ListFor(context.Background(), companyUser, &companyID)

		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		assert.Equal(t, model.NotificationTypeApplication, notifications[0].Type)
		assert.False(t, notifications[0].Read)
	})

	t.Run("acknowledged keys come back read without being dropped", func(t *testing.T) {
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)

		apps.EXPECT().FindByCompany(gomock.Any(), companyID).
			Return([]*model.Application{pendingApp}, nil)
		reads.EXPECT().ReadKeys(gomock.Any(), companyUser.ID, model.RoleCompany).
			Return(map[string]bool{"application:new:" + pendingApp.ID.String(): true}, nil)

		svc := newService(apps, reads)
		notifications, err := svc.ListFor(context.Background(), companyUser, &companyID)

		assert.NoError(t, err)
		assert.Len(t, notifications, 1)
		assert.True(t, notifications[0].Read)
	})

	t.Run("company feed requires a company scope", func(t *testing.T) {
		svc := newService(
			mocks.NewMockApplicationRepositoryIface(ctrl),
			mocks.NewMockNotificationReadRepositoryIface(ctrl),
		)
		_, err := svc.ListFor(context.Background(), companyUser, nil)

		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})
}

func TestStudentNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}

	reviewedAt := time.Now().Add(-time.Hour)
	reviewed := &model.Report{
		ID:         uuid.New(),
		Title:      "Backend internship at Acme",
		Status:     model.ReportStatusAccepted,
		ReviewedAt: &reviewedAt,
	}
	draft := &model.Report{ID: uuid.New(), Title: "Unreviewed"}

	workshop := &model.Workshop{
		ID:       uuid.New(),
		Name:     "CV Clinic",
		StartsAt: time.Now().Add(48 * time.Hour),
	}

	t.Run("reviewed reports, workshops, and the open cycle surface newest first", func(t *testing.T) {
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		workshops := mocks.NewMockWorkshopRepositoryIface(ctrl)
		cycles := mocks.NewMockCycleRepositoryIface(ctrl)
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)

		cycle := &model.Cycle{
			ID:       uuid.New(),
			Name:     "Summer 2027",
			StartsAt: time.Now().Add(-24 * time.Hour),
			EndsAt:   time.Now().Add(30 * 24 * time.Hour),
		}

		reports.EXPECT().FindByStudent(gomock.Any(), student.ID).
			Return([]*model.Report{reviewed, draft}, nil)
		workshops.EXPECT().FindUpcoming(gomock.Any(), gomock.Any()).
			Return([]*model.Workshop{workshop}, nil)
		cycles.EXPECT().FindCurrent(gomock.Any(), gomock.Any()).Return(cycle, nil)
		reads.EXPECT().ReadKeys(gomock.Any(), student.ID, model.RoleStudent).
			Return(map[string]bool{}, nil)

		svc := service.NewNotificationService(apps, reports, workshops, cycles, reads, nil)
		notifications, err := svc.ListFor(context.Background(), student, nil)

		assert.NoError(t, err)
		assert.Len(t, notifications, 3)
		// Workshop is furthest in the future, so it sorts first.
		assert.Equal(t, model.NotificationTypeWorkshop, notifications[0].Type)
		for i := 1; i < len(notifications); i++ {
			assert.False(t, notifications[i].Date.After(notifications[i-1].Date))
		}
	})

	t.Run("no current cycle is not an error", func(t *testing.T) {
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		workshops := mocks.NewMockWorkshopRepositoryIface(ctrl)
		cycles := mocks.NewMockCycleRepositoryIface(ctrl)
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)

		reports.EXPECT().FindByStudent(gomock.Any(), student.ID).Return(nil, nil)
		workshops.EXPECT().FindUpcoming(gomock.Any(), gomock.Any()).Return(nil, nil)
		cycles.EXPECT().FindCurrent(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
		reads.EXPECT().ReadKeys(gomock.Any(), student.ID, model.RoleStudent).
			Return(map[string]bool{}, nil)

		svc := service.NewNotificationService(apps, reports, workshops, cycles, reads, nil)
		notifications, err := svc.ListFor(context.Background(), student, nil)

		assert.NoError(t, err)
		assert.Empty(t, notifications)
	})
}

func TestMarkNotificationsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}

	t.Run("single acknowledgment", func(t *testing.T) {
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)
		reads.EXPECT().MarkRead(gomock.Any(), student.ID, model.RoleStudent, "workshop:abc").Return(nil)

		svc := service.NewNotificationService(nil, nil, nil, nil, reads, nil)
		assert.NoError(t, svc.MarkRead(context.Background(), student, "workshop:abc"))
	})

	t.Run("empty key is invalid", func(t *testing.T) {
		svc := service.NewNotificationService(nil, nil, nil, nil, mocks.NewMockNotificationReadRepositoryIface(ctrl), nil)
		assert.ErrorIs(t, svc.MarkRead(context.Background(), student, ""), domain.ErrInvalidInput)
	})

	t.Run("mark-all only acknowledges unread keys", func(t *testing.T) {
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		workshops := mocks.NewMockWorkshopRepositoryIface(ctrl)
		cycles := mocks.NewMockCycleRepositoryIface(ctrl)
		reads := mocks.NewMockNotificationReadRepositoryIface(ctrl)

		reviewedAt := time.Now().Add(-time.Hour)
		seen := &model.Report{ID: uuid.New(), Title: "Seen", Status: model.ReportStatusAccepted, ReviewedAt: &reviewedAt}
		fresh := &model.Report{ID: uuid.New(), Title: "Fresh", Status: model.ReportStatusRejected, ReviewedAt: &reviewedAt}

		reports.EXPECT().FindByStudent(gomock.Any(), student.ID).
			Return([]*model.Report{seen, fresh}, nil)
		workshops.EXPECT().FindUpcoming(gomock.Any(), gomock.Any()).Return(nil, nil)
		cycles.EXPECT().FindCurrent(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)

		seenKey := "report:" + seen.ID.String() + ":accepted"
		freshKey := "report:" + fresh.ID.String() + ":rejected"
		reads.EXPECT().ReadKeys(gomock.Any(), student.ID, model.RoleStudent).
			Return(map[string]bool{seenKey: true}, nil)
		reads.EXPECT().MarkManyRead(gomock.Any(), student.ID, model.RoleStudent, []string{freshKey}).Return(nil)

		svc := service.NewNotificationService(apps, reports, workshops, cycles, reads, nil)
		assert.NoError(t, svc.MarkAllRead(context.Background(), student, nil))
	})
}
