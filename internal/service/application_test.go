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

func TestApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}
	internshipID := uuid.New()

	input := service.ApplyInput{
		InternshipID: internshipID,
		CoverLetter:  "I worked on two payments side projects.",
		Documents:    []string{"doc://cv-2026.pdf", "doc://transcript.pdf"},
	}

	activeInternship := func() *model.Internship {
		return &model.Internship{
			ID:       internshipID,
			Status:   model.InternshipStatusActive,
			Deadline: time.Now().Add(7 * 24 * time.Hour),
		}
	}

	t.Run("successful application starts pending", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)

		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(activeInternship(), nil)
		repo.EXPECT().
			FindByInternshipAndStudent(gomock.Any(), internshipID, student.ID).
			Return(nil, domain.ErrApplicationNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewApplicationService(repo, internships)
		app, err := svc.Apply(context.Background(), input, student)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusPending, app.Status)
		assert.Equal(t, student.ID, app.StudentID)
		assert.NotEmpty(t, app.Documents)
	})

	t.Run("closed postings reject applications", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)

		closed := activeInternship()
		closed.Status = model.InternshipStatusClosed
		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(closed, nil)

		svc := service.NewApplicationService(repo, internships)
		_, err := svc.Apply(context.Background(), input, student)

		assert.ErrorIs(t, err, domain.ErrInternshipClosed)
	})

	t.Run("passed deadlines reject applications", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)

		expired := activeInternship()
		expired.Deadline = time.Now().Add(-time.Hour)
		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(expired, nil)

		svc := service.NewApplicationService(repo, internships)
		_, err := svc.Apply(context.Background(), input, student)

		assert.ErrorIs(t, err, domain.ErrDeadlinePassed)
	})

	t.Run("a student applies to an internship once", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)

		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(activeInternship(), nil)
		repo.EXPECT().
			FindByInternshipAndStudent(gomock.Any(), internshipID, student.ID).
			Return(&model.Application{ID: uuid.New()}, nil)

		svc := service.NewApplicationService(repo, internships)
		_, err := svc.Apply(context.Background(), input, student)

		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("only students apply", func(t *testing.T) {
		svc := service.NewApplicationService(
			mocks.NewMockApplicationRepositoryIface(ctrl),
			mocks.NewMockInternshipRepositoryIface(ctrl),
		)
		_, err := svc.Apply(context.Background(), input, model.Actor{Role: model.RoleCompany})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("cover letter is required", func(t *testing.T) {
		bad := input
		bad.CoverLetter = ""

		svc := service.NewApplicationService(
			mocks.NewMockApplicationRepositoryIface(ctrl),
			mocks.NewMockInternshipRepositoryIface(ctrl),
		)
		_, err := svc.Apply(context.Background(), bad, student)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
