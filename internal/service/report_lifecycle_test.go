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

func TestReportDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}
	internshipID := uuid.New()

	input := service.SaveDraftInput{
		InternshipID:   internshipID,
		Title:          "Backend internship at Acme",
		Introduction:   "Three months on the payments team.",
		HelpfulCourses: []string{"CSEN701", "CSEN704"},
	}

	t.Run("first save creates the draft", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)

		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(nil, domain.ErrReportNotFound)
		reports.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		report, err := svc.SaveDraft(context.Background(), input, student)

		assert.NoError(t, err)
		assert.Equal(t, student.ID, report.StudentID)
		assert.False(t, report.IsSubmitted)
		assert.Equal(t, model.ReportStatusPending, report.Status)
	})

	t.Run("saving twice overwrites instead of duplicating", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)

		existing := &model.Report{
			ID:           uuid.New(),
			StudentID:    student.ID,
			InternshipID: internshipID,
			Title:        "Old title",
		}
		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(existing, nil)
		reports.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		report, err := svc.SaveDraft(context.Background(), input, student)

		assert.NoError(t, err)
		assert.Equal(t, input.Title, report.Title)
	})

	t.Run("submitted reports are read-only to the student", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)

		reports.EXPECT().
			FindByKey(gomock.Any(), student.ID, internshipID).
			Return(&model.Report{IsSubmitted: true}, nil)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		_, err := svc.SaveDraft(context.Background(), input, student)

		assert.ErrorIs(t, err, domain.ErrReportSubmitted)
	})

	t.Run("only students draft reports", func(t *testing.T) {
		svc := service.NewReportLifecycleService(
			mocks.NewMockReportRepositoryIface(ctrl),
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			nil,
		)
		_, err := svc.SaveDraft(context.Background(), input, model.Actor{Role: model.RoleCompany})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestReportSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	student := model.Actor{ID: uuid.New(), Role: model.RoleStudent, Name: "Lina"}
	internshipID := uuid.New()

	newReport := func() *model.Report {
		return &model.Report{
			ID:           uuid.New(),
			StudentID:    student.ID,
			InternshipID: internshipID,
			Title:        "Backend internship at Acme",
			Status:       model.ReportStatusPending,
		}
	}

	t.Run("submission requires the student evaluation", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)
		report := newReport()

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)
		evaluations.EXPECT().
			FindStudentEvaluation(gomock.Any(), student.ID, internshipID).
			Return(nil, domain.ErrEvaluationNotFound)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		_, err := svc.Submit(context.Background(), report.ID, student)

		assert.ErrorIs(t, err, domain.ErrNotFinalizable)
		assert.False(t, report.IsSubmitted)
	})

	t.Run("submission succeeds once the evaluation exists", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)
		report := newReport()

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)
		evaluations.EXPECT().
			FindStudentEvaluation(gomock.Any(), student.ID, internshipID).
			Return(&model.StudentEvaluation{StudentID: student.ID, InternshipID: internshipID}, nil)
		reports.EXPECT().UpdateVersioned(gomock.Any(), report).Return(nil)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		got, err := svc.Submit(context.Background(), report.ID, student)

		assert.NoError(t, err)
		assert.True(t, got.IsSubmitted)
		assert.NotNil(t, got.SubmittedAt)
		assert.Equal(t, model.ReportStatusPending, got.Status)
	})

	t.Run("resubmitting is a no-op", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)
		report := newReport()
		submittedAt := time.Now().Add(-time.Hour)
		report.IsSubmitted = true
		report.SubmittedAt = &submittedAt

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)

		svc := service.NewReportLifecycleService(reports, evaluations, nil)
		got, err := svc.Submit(context.Background(), report.ID, student)

		assert.NoError(t, err)
		assert.Equal(t, &submittedAt, got.SubmittedAt)
	})

	t.Run("students cannot submit someone else's report", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		report := newReport()
		report.StudentID = uuid.New()

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)

		svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)
		_, err := svc.Submit(context.Background(), report.ID, student)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestReportReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	faculty := model.Actor{ID: uuid.New(), Role: model.RoleFaculty, Name: "Dr. Osei"}

	newSubmitted := func() *model.Report {
		submittedAt := time.Now().Add(-24 * time.Hour)
		return &model.Report{
			ID:          uuid.New(),
			StudentID:   uuid.New(),
			IsSubmitted: true,
			SubmittedAt: &submittedAt,
			Status:      model.ReportStatusPending,
		}
	}

	t.Run("accepting needs no comment", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		report := newSubmitted()

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)
		reports.EXPECT().UpdateVersioned(gomock.Any(), report).Return(nil)

		svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)
		got, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: report.ID,
			Status:   model.ReportStatusAccepted,
		}, faculty)

		assert.NoError(t, err)
		assert.Equal(t, model.ReportStatusAccepted, got.Status)
		assert.Equal(t, &faculty.ID, got.ReviewerID)
		assert.NotNil(t, got.ReviewedAt)
	})

	t.Run("rejecting without a comment leaves the report untouched", func(t *testing.T) {
		// The comment check runs before the report is even loaded, so no
		// repository expectations at all.
		reports := mocks.NewMockReportRepositoryIface(ctrl)

		svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)
		_, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: uuid.New(),
			Status:   model.ReportStatusRejected,
		}, faculty)

		assert.ErrorIs(t, err, domain.ErrMissingComment)
	})

	t.Run("flagging requires a comment too", func(t *testing.T) {
		svc := service.NewReportLifecycleService(
			mocks.NewMockReportRepositoryIface(ctrl),
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			nil,
		)
		_, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: uuid.New(),
			Status:   model.ReportStatusFlagged,
			Comment:  "  ",
		}, faculty)

		assert.ErrorIs(t, err, domain.ErrMissingComment)
	})

	t.Run("pending is not a reviewable decision", func(t *testing.T) {
		svc := service.NewReportLifecycleService(
			mocks.NewMockReportRepositoryIface(ctrl),
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			nil,
		)
		_, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: uuid.New(),
			Status:   model.ReportStatusPending,
		}, faculty)

		assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	})

	t.Run("unsubmitted reports cannot be reviewed", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		report := newSubmitted()
		report.IsSubmitted = false

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)

		svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)
		_, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: report.ID,
			Status:   model.ReportStatusAccepted,
		}, faculty)

		assert.ErrorIs(t, err, domain.ErrReportNotSubmitted)
	})

	t.Run("repeating the same decision is a no-op", func(t *testing.T) {
		reports := mocks.NewMockReportRepositoryIface(ctrl)
		report := newSubmitted()
		report.Status = model.ReportStatusAccepted

		reports.EXPECT().FindByID(gomock.Any(), report.ID).Return(report, nil)

		svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)
		got, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: report.ID,
			Status:   model.ReportStatusAccepted,
		}, faculty)

		assert.NoError(t, err)
		assert.Nil(t, got.ReviewedAt)
	})

	t.Run("only faculty review", func(t *testing.T) {
		svc := service.NewReportLifecycleService(
			mocks.NewMockReportRepositoryIface(ctrl),
			mocks.NewMockEvaluationRepositoryIface(ctrl),
			nil,
		)
		_, err := svc.Review(context.Background(), service.ReviewInput{
			ReportID: uuid.New(),
			Status:   model.ReportStatusAccepted,
		}, model.Actor{Role: model.RoleScad})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestReportReviewQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockReportRepositoryIface(ctrl)
	submitted := []*model.Report{{ID: uuid.New(), IsSubmitted: true}}
	reports.EXPECT().FindSubmitted(gomock.Any()).Return(submitted, nil).Times(2)

	svc := service.NewReportLifecycleService(reports, mocks.NewMockEvaluationRepositoryIface(ctrl), nil)

	for _, role := range []model.UserRole{model.RoleFaculty, model.RoleScad} {
		got, err := svc.ReviewQueue(context.Background(), model.Actor{Role: role})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	}

	_, err := svc.ReviewQueue(context.Background(), model.Actor{Role: model.RoleStudent})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
