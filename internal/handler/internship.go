// internal/handler/internship.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campusbridge/internhub/internal/durations"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type InternshipHandler struct {
	internshipService *service.InternshipService
	queryService      *service.QueryService
	userService       *service.UserService
}

func NewInternshipHandler(
	internshipService *service.InternshipService,
	queryService *service.QueryService,
	userService *service.UserService,
) *InternshipHandler {
	return &InternshipHandler{
		internshipService: internshipService,
		queryService:      queryService,
		userService:       userService,
	}
}

type InternshipResponse struct {
	BaseResponse
	Internship      *model.Internship `json:"internship"`
	ApplicantsCount int64             `json:"applicants_count"`
}

type InternshipListResponse struct {
	BaseResponse
	Internships []*model.Internship `json:"internships"`
}

// ListHandler serves the shared internship search. Filters arrive as query
// parameters: search, paid, industry (repeatable), duration (short|medium|long).
func (h *InternshipHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := service.InternshipFilter{
		Search:     query.Get("search"),
		Industries: query["industry"],
	}

	if raw := query.Get("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid paid filter")
			return
		}
		filter.Paid = &paid
	}

	switch bucket := durations.Bucket(query.Get("duration")); bucket {
	case "", durations.BucketShort, durations.BucketMedium, durations.BucketLong:
		filter.Duration = bucket
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid duration filter")
		return
	}

	internships, err := h.queryService.SearchInternships(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Internship search error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internships:  internships,
	})
}

func (h *InternshipHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	internship, err := h.internshipService.Get(r.Context(), internshipID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	count, err := h.queryService.ApplicantsCount(r.Context(), internshipID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Applicants count error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse:    BaseResponse{Ok: true},
		Internship:      internship,
		ApplicantsCount: count,
	})
}

func (h *InternshipHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var input service.InternshipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	internship, err := h.internshipService.Post(r.Context(), input, actor, companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Internship creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

func (h *InternshipHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var input service.InternshipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	internship, err := h.internshipService.Update(r.Context(), internshipID, input, actor, companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Internship update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

// CloseHandler stops an internship from accepting new applications without
// touching its existing ones.
func (h *InternshipHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	internship, err := h.internshipService.Close(r.Context(), internshipID, actor, companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Internship close error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

func (h *InternshipHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if err := h.internshipService.Delete(r.Context(), internshipID, actor, companyID); err != nil {
		slog.ErrorContext(r.Context(), "Internship delete error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// MineHandler lists the acting company user's own postings.
func (h *InternshipHandler) MineHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	internships, err := h.queryService.InternshipsForCompany(r.Context(), companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company internships listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internships:  internships,
	})
}
