package service_test

import (
	"context"
	"testing"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/mocks"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanyEvaluations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	company := model.Actor{ID: uuid.New(), Role: model.RoleCompany, Name: "Acme Recruiting"}
	companyID := uuid.New()

	input := service.CompanyEvaluationInput{
		StudentID:      uuid.New(),
		InternshipID:   uuid.New(),
		Rating:         4,
		Comments:       "Reliable, picked up the codebase quickly.",
		SupervisorName: "J. Mansour",
	}

	t.Run("save upserts on the composite key", func(t *testing.T) {
		repo := mocks.NewMockEvaluationRepositoryIface(ctrl)
		repo.EXPECT().UpsertCompanyEvaluation(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewEvaluationService(repo, mocks.NewMockReportRepositoryIface(ctrl))
		eval, err := svc.SaveCompanyEvaluation(context.Background(), input, company, companyID)

		assert.NoError(t, err)
		assert.Equal(t, companyID, eval.CompanyID)
		assert.Equal(t, 4, eval.Rating)
	})

	t.Run("rating outside 1..5 is invalid", func(t *testing.T) {
		bad := input
		bad.Rating = 6

		svc := service.NewEvaluationService(
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			mocks.NewMockReportRepositoryIface(ctrl),
		)
		_, err := svc.SaveCompanyEvaluation(context.Background(), bad, company, companyID)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("only company users evaluate interns", func(t *testing.T) {
		svc := service.NewEvaluationService(
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			mocks.NewMockReportRepositoryIface(ctrl),
		)
		_, err := svc.SaveCompanyEvaluation(context.Background(), input, model.Actor{Role: model.RoleStudent}, companyID)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestStudentEvaluations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}
	internshipID := uuid.New()

	t.Run("save upserts and keys on the acting student", func(t *testing.T) {
		repo := mocks.NewMockEvaluationRepositoryIface(ctrl)
		repo.EXPECT().UpsertStudentEvaluation(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewEvaluationService(repo, mocks.NewMockReportRepositoryIface(ctrl))
		eval, err := svc.SaveStudentEvaluation(context.Background(), service.StudentEvaluationInput{
			InternshipID: internshipID,
			Comments:     "Supportive team, real responsibilities.",
			Recommend:    true,
		}, student)

		assert.NoError(t, err)
		assert.Equal(t, student.ID, eval.StudentID)
		assert.True(t, eval.Recommend)
	})

	t.Run("delete is blocked while a submitted report depends on it", func(t *testing.T) {
		repo := mocks.NewMockEvaluationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)

		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(&model.Report{IsSubmitted: true}, nil)

		svc := service.NewEvaluationService(repo, reports)
		err := svc.DeleteStudentEvaluation(context.Background(), internshipID, student)

		assert.ErrorIs(t, err, domain.ErrEvaluationInUse)
	})

	t.Run("delete succeeds with only a draft report", func(t *testing.T) {
		repo := mocks.NewMockEvaluationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)

		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(&model.Report{IsSubmitted: false}, nil)
		repo.EXPECT().DeleteStudentEvaluation(gomock.Any(), student.ID, internshipID).Return(nil)

		svc := service.NewEvaluationService(repo, reports)
		err := svc.DeleteStudentEvaluation(context.Background(), internshipID, student)

		assert.NoError(t, err)
	})

	t.Run("delete succeeds with no report at all", func(t *testing.T) {
		repo := mocks.NewMockEvaluationRepositoryIface(ctrl)
		reports := mocks.NewMockReportRepositoryIface(ctrl)

		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(nil, domain.ErrReportNotFound)
		repo.EXPECT().DeleteStudentEvaluation(gomock.Any(), student.ID, internshipID).Return(nil)

		svc := service.NewEvaluationService(repo, reports)
		err := svc.DeleteStudentEvaluation(context.Background(), internshipID, student)

		assert.NoError(t, err)
	})
}
