package service_test

import (
	"context"
	"testing"

	"github.com/campusbridge/internhub/internal/durations"
	"github.com/campusbridge/internhub/internal/mocks"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func TestInternshipFilter(t *testing.T) {
	internship := &model.Internship{
		Title:      "Backend Engineering Intern",
		Department: "Payments",
		Duration:   "3 months",
		Paid:       true,
		Company: model.Company{
			Name:     "Acme Corp",
			Industry: "Fintech",
		},
	}

	cases := []struct {
		name   string
		filter service.InternshipFilter
		want   bool
	}{
		{"zero filter matches everything", service.InternshipFilter{}, true},
		{"search matches title case-insensitively", service.InternshipFilter{Search: "backend"}, true},
		{"search matches company name", service.InternshipFilter{Search: "acme"}, true},
		{"search matches department", service.InternshipFilter{Search: "payments"}, true},
		{"search misses", service.InternshipFilter{Search: "frontend"}, false},
		{"paid filter matches", service.InternshipFilter{Paid: boolPtr(true)}, true},
		{"unpaid filter rejects paid postings", service.InternshipFilter{Paid: boolPtr(false)}, false},
		{"industry matches case-insensitively", service.InternshipFilter{Industries: []string{"fintech"}}, true},
		{"industry list needs one hit", service.InternshipFilter{Industries: []string{"Retail", "Fintech"}}, true},
		{"industry misses", service.InternshipFilter{Industries: []string{"Retail"}}, false},
		{"duration bucket matches", service.InternshipFilter{Duration: durations.BucketMedium}, true},
		{"duration bucket misses", service.InternshipFilter{Duration: durations.BucketLong}, false},
		{"all constraints together", service.InternshipFilter{
			Search:     "intern",
			Paid:       boolPtr(true),
			Industries: []string{"Fintech"},
			Duration:   durations.BucketMedium,
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(internship))
		})
	}
}

func TestSearchInternships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	internships := mocks.NewMockInternshipRepositoryIface(ctrl)
	active := []*model.Internship{
		{Title: "Backend Intern", Duration: "3 months", Paid: true},
		{Title: "Design Intern", Duration: "2 weeks", Paid: false},
	}
	internships.EXPECT().FindActive(gomock.Any()).Return(active, nil)

	svc := service.NewQueryService(
		internships,
		mocks.NewMockApplicationRepositoryIface(ctrl),
		mocks.NewMockEvaluationRepositoryIface(ctrl),
		mocks.NewMockCompanyRepositoryIface(ctrl),
	)

	got, err := svc.SearchInternships(context.Background(), service.InternshipFilter{Paid: boolPtr(true)})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Backend Intern", got[0].Title)
}

func TestApplicantsCountIsDerived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	internshipID := uuid.New()
	applications := mocks.NewMockApplicationRepositoryIface(ctrl)
	applications.EXPECT().CountByInternship(gomock.Any(), internshipID).Return(int64(7), nil)

	svc := service.NewQueryService(
		mocks.NewMockInternshipRepositoryIface(ctrl),
		applications,
		mocks.NewMockEvaluationRepositoryIface(ctrl),
		mocks.NewMockCompanyRepositoryIface(ctrl),
	)

	count, err := svc.ApplicantsCount(context.Background(), internshipID)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestTopRatedCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	acmeID, globexID := uuid.New(), uuid.New()
	acmePosting := &model.Internship{ID: uuid.New(), CompanyID: acmeID}
	globexPosting := &model.Internship{ID: uuid.New(), CompanyID: globexID}

	evaluations := mocks.NewMockEvaluationRepositoryIface(ctrl)
	evaluations.EXPECT().FindStudentEvaluations(gomock.Any()).Return([]*model.StudentEvaluation{
		{InternshipID: acmePosting.ID, Recommend: true},
		{InternshipID: acmePosting.ID, Recommend: true},
		{InternshipID: acmePosting.ID, Recommend: false},
		{InternshipID: globexPosting.ID, Recommend: true},
	}, nil)

	internships := mocks.NewMockInternshipRepositoryIface(ctrl)
	internships.EXPECT().FindAll(gomock.Any()).
		Return([]*model.Internship{acmePosting, globexPosting}, nil)

	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	companies.EXPECT().FindAll(gomock.Any()).Return([]*model.Company{
		{ID: acmeID, Name: "Acme Corp"},
		{ID: globexID, Name: "Globex"},
	}, nil)

	svc := service.NewQueryService(
		internships,
		mocks.NewMockApplicationRepositoryIface(ctrl),
		evaluations,
		companies,
	)

	ratings, err := svc.TopRatedCompanies(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, ratings, 2)
	assert.Equal(t, "Acme Corp", ratings[0].Name)
	assert.Equal(t, 2, ratings[0].Recommends)
	assert.Equal(t, 3, ratings[0].Total)
	assert.Equal(t, "Globex", ratings[1].Name)
}
