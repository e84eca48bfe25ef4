// internal/handler/company.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type CompanyHandler struct {
	companyService *service.CompanyService
	queryService   *service.QueryService
}

func NewCompanyHandler(companyService *service.CompanyService, queryService *service.QueryService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		queryService:   queryService,
	}
}

type CompanyResponse struct {
	BaseResponse
	Company *model.Company `json:"company"`
}

// RegisterHandler accepts a company registration. The record starts in the
// pending state and stays invisible to the posting flows until SCAD accepts.
func (h *CompanyHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companyService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

// DecideHandler records the SCAD accept/reject decision for a pending
// registration and triggers the decision email.
func (h *CompanyHandler) DecideHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var input service.CompanyDecisionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.CompanyID = companyID

	company, err := h.companyService.Decide(r.Context(), input, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company decision error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

type CompanyListResponse struct {
	BaseResponse
	Companies []*model.Company `json:"companies"`
}

func (h *CompanyHandler) PendingHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companies, err := h.companyService.ListPending(r.Context(), actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Pending companies listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Companies:    companies,
	})
}

func (h *CompanyHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Companies listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Companies:    companies,
	})
}

func (h *CompanyHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	company, err := h.companyService.Get(r.Context(), companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

type TopRatedResponse struct {
	BaseResponse
	Companies []service.CompanyRating `json:"companies"`
}

// TopRatedHandler ranks accepted companies by the share of student
// evaluations that recommend them.
func (h *CompanyHandler) TopRatedHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	ratings, err := h.queryService.TopRatedCompanies(r.Context(), limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "Top rated companies error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TopRatedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Companies:    ratings,
	})
}
