// internal/handler/evaluation.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type EvaluationHandler struct {
	evaluationService *service.EvaluationService
	userService       *service.UserService
}

func NewEvaluationHandler(evaluationService *service.EvaluationService, userService *service.UserService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		userService:       userService,
	}
}

type CompanyEvaluationResponse struct {
	BaseResponse
	Evaluation *model.CompanyEvaluation `json:"evaluation"`
}

// SaveCompanyEvaluationHandler upserts the acting company's evaluation of a
// student intern. Writing twice for the same student and internship updates
// the existing row.
func (h *EvaluationHandler) SaveCompanyEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	var input service.CompanyEvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	evaluation, err := h.evaluationService.SaveCompanyEvaluation(r.Context(), input, actor, companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company evaluation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyEvaluationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Evaluation:   evaluation,
	})
}

type StudentEvaluationResponse struct {
	BaseResponse
	Evaluation *model.StudentEvaluation `json:"evaluation"`
}

// SaveStudentEvaluationHandler upserts the acting student's evaluation of
// the company behind an internship.
func (h *EvaluationHandler) SaveStudentEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.StudentEvaluationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	evaluation, err := h.evaluationService.SaveStudentEvaluation(r.Context(), input, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Student evaluation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, StudentEvaluationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Evaluation:   evaluation,
	})
}

// DeleteStudentEvaluationHandler removes a student evaluation unless a
// submitted report depends on it.
func (h *EvaluationHandler) DeleteStudentEvaluationHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	internshipID, err := pathID(r, "internshipID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	if err := h.evaluationService.DeleteStudentEvaluation(r.Context(), internshipID, actor); err != nil {
		slog.ErrorContext(r.Context(), "Student evaluation delete error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type CompanyEvaluationListResponse struct {
	BaseResponse
	Evaluations []*model.CompanyEvaluation `json:"evaluations"`
}

// ListCompanyEvaluationsHandler lists the acting company's intern
// evaluations.
func (h *EvaluationHandler) ListCompanyEvaluationsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	evaluations, err := h.evaluationService.ListCompanyEvaluations(r.Context(), companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company evaluations listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyEvaluationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Evaluations:  evaluations,
	})
}
