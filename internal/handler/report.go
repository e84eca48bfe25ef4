// internal/handler/report.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type ReportHandler struct {
	reportService *service.ReportLifecycleService
}

func NewReportHandler(reportService *service.ReportLifecycleService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type ReportResponse struct {
	BaseResponse
	Report *model.Report `json:"report"`
}

type ReportListResponse struct {
	BaseResponse
	Reports []*model.Report `json:"reports"`
}

// DraftHandler upserts the acting student's report draft for an internship.
func (h *ReportHandler) DraftHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var input service.SaveDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.reportService.SaveDraft(r.Context(), input, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report draft error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportResponse{
		BaseResponse: BaseResponse{Ok: true},
		Report:       report,
	})
}

// SubmitHandler locks a draft for faculty review. Submission requires the
// student's evaluation of the company to exist first.
func (h *ReportHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.reportService.Submit(r.Context(), reportID, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report submit error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportResponse{
		BaseResponse: BaseResponse{Ok: true},
		Report:       report,
	})
}

type ReviewRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// ReviewHandler records a faculty decision on a submitted report.
func (h *ReportHandler) ReviewHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.reportService.Review(r.Context(), service.ReviewInput{
		ReportID: reportID,
		Status:   model.ReportStatus(req.Status),
		Comment:  req.Comment,
	}, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report review error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportResponse{
		BaseResponse: BaseResponse{Ok: true},
		Report:       report,
	})
}

func (h *ReportHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	reportID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.reportService.Get(r.Context(), reportID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportResponse{
		BaseResponse: BaseResponse{Ok: true},
		Report:       report,
	})
}

// MineHandler lists the acting student's reports, drafts included.
func (h *ReportHandler) MineHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	reports, err := h.reportService.ListByStudent(r.Context(), actor.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Student reports listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Reports:      reports,
	})
}

// QueueHandler lists submitted reports awaiting a faculty decision.
func (h *ReportHandler) QueueHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	reports, err := h.reportService.ReviewQueue(r.Context(), actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Report queue error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ReportListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Reports:      reports,
	})
}
