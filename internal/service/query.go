// internal/service/query.go
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/campusbridge/internhub/internal/durations"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/google/uuid"
)

// InternshipFilter narrows an internship listing. Zero values mean "no
// constraint". Filters are pure predicates over an in-memory snapshot;
// data volumes here are tens to low hundreds of rows.
type InternshipFilter struct {
	Search     string
	Paid       *bool
	Industries []string
	Duration   durations.Bucket
}

// Matches reports whether the internship passes every set constraint.
func (f InternshipFilter) Matches(internship *model.Internship) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(internship.Title), needle) &&
			!strings.Contains(strings.ToLower(internship.Company.Name), needle) &&
			!strings.Contains(strings.ToLower(internship.Department), needle) {
			return false
		}
	}

	if f.Paid != nil && internship.Paid != *f.Paid {
		return false
	}

	if len(f.Industries) > 0 {
		found := false
		for _, industry := range f.Industries {
			if strings.EqualFold(industry, internship.Company.Industry) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Duration != "" && durations.BucketOf(internship.Duration) != f.Duration {
		return false
	}

	return true
}

// QueryService provides the read-only scoped views consumed by every
// dashboard. It never mutates entity state.
type QueryService struct {
	internships  repository.InternshipRepositoryIface
	applications repository.ApplicationRepositoryIface
	evaluations  repository.EvaluationRepositoryIface
	companies    repository.CompanyRepositoryIface
}

func NewQueryService(
	internships repository.InternshipRepositoryIface,
	applications repository.ApplicationRepositoryIface,
	evaluations repository.EvaluationRepositoryIface,
	companies repository.CompanyRepositoryIface,
) *QueryService {
	return &QueryService{
		internships:  internships,
		applications: applications,
		evaluations:  evaluations,
		companies:    companies,
	}
}

// SearchInternships returns active internships passing the filter.
func (s *QueryService) SearchInternships(ctx context.Context, filter InternshipFilter) ([]*model.Internship, error) {
	internships, err := s.internships.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Internship, 0, len(internships))
	for _, internship := range internships {
		if filter.Matches(internship) {
			out = append(out, internship)
		}
	}
	return out, nil
}

func (s *QueryService) InternshipsForCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error) {
	return s.internships.FindByCompany(ctx, companyID)
}

func (s *QueryService) ApplicationsForInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error) {
	return s.applications.FindByInternship(ctx, internshipID)
}

func (s *QueryService) ApplicationsForCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Application, error) {
	return s.applications.FindByCompany(ctx, companyID)
}

// ApplicantsCount derives the applicant total for a posting from the
// application collection. The count is intentionally never stored.
func (s *QueryService) ApplicantsCount(ctx context.Context, internshipID uuid.UUID) (int64, error) {
	return s.applications.CountByInternship(ctx, internshipID)
}

// CompanyRating aggregates a company's recommend ratio for the SCAD
// top-rated-companies statistics.
type CompanyRating struct {
	CompanyID  uuid.UUID `json:"company_id"`
	Name       string    `json:"name"`
	Recommends int       `json:"recommends"`
	Total      int       `json:"total"`
}

// TopRatedCompanies ranks accepted companies by recommend count across all
// student evaluations.
func (s *QueryService) TopRatedCompanies(ctx context.Context, limit int) ([]CompanyRating, error) {
	evaluations, err := s.evaluations.FindStudentEvaluations(ctx)
	if err != nil {
		return nil, err
	}

	internships, err := s.internships.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	companyByInternship := make(map[uuid.UUID]uuid.UUID, len(internships))
	for _, internship := range internships {
		companyByInternship[internship.ID] = internship.CompanyID
	}

	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(companies))
	for _, company := range companies {
		names[company.ID] = company.Name
	}

	totals := make(map[uuid.UUID]*CompanyRating)
	for _, eval := range evaluations {
		companyID, ok := companyByInternship[eval.InternshipID]
		if !ok {
			continue
		}
		rating, ok := totals[companyID]
		if !ok {
			rating = &CompanyRating{CompanyID: companyID, Name: names[companyID]}
			totals[companyID] = rating
		}
		rating.Total++
		if eval.Recommend {
			rating.Recommends++
		}
	}

	out := make([]CompanyRating, 0, len(totals))
	for _, rating := range totals {
		out = append(out, *rating)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Recommends != out[j].Recommends {
			return out[i].Recommends > out[j].Recommends
		}
		return out[i].Name < out[j].Name
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
