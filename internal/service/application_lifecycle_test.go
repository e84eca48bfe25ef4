package service_test

import (
	"context"
	"testing"

	"github.com/campusbridge/internhub/internal/audit"
	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/mocks"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	company := model.Actor{ID: uuid.New(), Role: model.RoleCompany, Name: "Acme Recruiting"}
	faculty := model.Actor{ID: uuid.New(), Role: model.RoleFaculty, Name: "Dr. Osei"}
	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}

	newApp := func(status model.ApplicationStatus) *model.Application {
		return &model.Application{
			ID:           uuid.New(),
			InternshipID: uuid.New(),
			StudentID:    student.ID,
			Status:       status,
			Version:      3,
		}
	}

	t.Run("company finalizes a pending application", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		trail := mocks.NewMockStatusTransitionRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)
		trail.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewApplicationLifecycleService(repo, trail, audit.NewDBTrail(trail))
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusFinalized,
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusFinalized, got.Status)
	})

	t.Run("accepting sets no timestamps, starting the internship does", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusAccepted)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusCurrentIntern,
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusCurrentIntern, got.Status)
		assert.NotNil(t, got.InternshipStartDate)
		assert.Nil(t, got.InternshipEndDate)
	})

	t.Run("completing the internship stamps the end date", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusCurrentIntern)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusInternshipComplete,
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusInternshipComplete, got.Status)
		assert.NotNil(t, got.InternshipEndDate)
	})

	t.Run("re-requesting the current status is a no-op", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusAccepted)

		// No UpdateVersioned expectation; the write must not happen.
		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusAccepted,
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusAccepted, got.Status)
	})

	t.Run("target status is normalized before matching", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatus("  Finalized "),
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusFinalized, got.Status)
	})

	t.Run("unknown target status is rejected", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		_, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: uuid.New(),
			Target:        model.ApplicationStatus("approved"),
		}, company)

		assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	})

	t.Run("students cannot drive transitions", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		_, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: uuid.New(),
			Target:        model.ApplicationStatusAccepted,
		}, student)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("edges outside the table are rejected", func(t *testing.T) {
		cases := []struct {
			name   string
			actor  model.Actor
			from   model.ApplicationStatus
			target model.ApplicationStatus
		}{
			{"company cannot flag", company, model.ApplicationStatusPending, model.ApplicationStatusFlagged},
			{"company cannot revive a rejection", company, model.ApplicationStatusRejected, model.ApplicationStatusAccepted},
			{"company cannot skip acceptance", company, model.ApplicationStatusFinalized, model.ApplicationStatusCurrentIntern},
			{"faculty cannot finalize", faculty, model.ApplicationStatusPending, model.ApplicationStatusFinalized},
			{"faculty cannot touch finalized applications", faculty, model.ApplicationStatusFinalized, model.ApplicationStatusAccepted},
			{"faculty cannot start internships", faculty, model.ApplicationStatusAccepted, model.ApplicationStatusCurrentIntern},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := mocks.NewMockApplicationRepositoryIface(ctrl)
				app := newApp(tc.from)

				repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

				svc := service.NewApplicationLifecycleService(repo, nil, nil)
				_, err := svc.Transition(context.Background(), service.TransitionInput{
					ApplicationID: app.ID,
					Target:        tc.target,
				}, tc.actor)

				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			})
		}
	})

	t.Run("rejection without a comment is refused", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		_, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusRejected,
			Comment:       "   ",
		}, company)

		assert.ErrorIs(t, err, domain.ErrMissingComment)
		assert.Equal(t, model.ApplicationStatusPending, app.Status)
	})

	t.Run("faculty flags with a comment", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusFlagged,
			Comment:       "GPA requirement not met",
		}, faculty)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusFlagged, got.Status)
		assert.Equal(t, "GPA requirement not met", got.StatusComment)
	})

	t.Run("concurrent writer surfaces a conflict", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(domain.ErrConflict)

		svc := service.NewApplicationLifecycleService(repo, nil, nil)
		_, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusAccepted,
		}, company)

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("trail failures do not fail the transition", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		trail := mocks.NewMockStatusTransitionRepositoryIface(ctrl)
		app := newApp(model.ApplicationStatusPending)

		repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil)
		trail.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assert.AnError)

		svc := service.NewApplicationLifecycleService(repo, trail, audit.NewDBTrail(trail))
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        model.ApplicationStatusAccepted,
		}, company)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusAccepted, got.Status)
	})
}

func TestApplicationLifecycleJourney(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	company := model.Actor{ID: uuid.New(), Role: model.RoleCompany, Name: "Acme Recruiting"}
	app := &model.Application{
		ID:           uuid.New(),
		InternshipID: uuid.New(),
		StudentID:    uuid.New(),
		Status:       model.ApplicationStatusPending,
	}

	repo := mocks.NewMockApplicationRepositoryIface(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil).Times(4)
	repo.EXPECT().UpdateVersioned(gomock.Any(), app).Return(nil).Times(4)

	svc := service.NewApplicationLifecycleService(repo, nil, nil)

	for _, target := range []model.ApplicationStatus{
		model.ApplicationStatusFinalized,
		model.ApplicationStatusAccepted,
		model.ApplicationStatusCurrentIntern,
		model.ApplicationStatusInternshipComplete,
	} {
		got, err := svc.Transition(context.Background(), service.TransitionInput{
			ApplicationID: app.ID,
			Target:        target,
		}, company)
		assert.NoError(t, err)
		assert.Equal(t, target, got.Status)
	}

	assert.NotNil(t, app.InternshipStartDate)
	assert.NotNil(t, app.InternshipEndDate)
	assert.False(t, app.InternshipEndDate.Before(*app.InternshipStartDate))
}
