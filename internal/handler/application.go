// internal/handler/application.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
	lifecycleService   *service.ApplicationLifecycleService
	queryService       *service.QueryService
	userService        *service.UserService
}

func NewApplicationHandler(
	applicationService *service.ApplicationService,
	lifecycleService *service.ApplicationLifecycleService,
	queryService *service.QueryService,
	userService *service.UserService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		lifecycleService:   lifecycleService,
		queryService:       queryService,
		userService:        userService,
	}
}

type ApplicationResponse struct {
	BaseResponse
	Application *model.Application `json:"application"`
}

type ApplicationListResponse struct {
	BaseResponse
	Applications []*model.Application `json:"applications"`
}

// ApplyHandler creates a pending application for the acting student against
// the internship named in the URL.
func (h *ApplicationHandler) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	var input service.ApplyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.InternshipID = internshipID

	application, err := h.applicationService.Apply(r.Context(), input, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Application error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

type TransitionRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// TransitionHandler drives every status change on an application. The
// lifecycle service owns the role/edge rules; this handler only shapes the
// request and maps error kinds onto status codes.
func (h *ApplicationHandler) TransitionHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	applicationID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	application, err := h.lifecycleService.Transition(r.Context(), service.TransitionInput{
		ApplicationID: applicationID,
		Target:        model.ApplicationStatus(req.Status),
		Comment:       req.Comment,
	}, actor)
	if err != nil {
		slog.ErrorContext(r.Context(), "Application transition error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

func (h *ApplicationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	applicationID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	application, err := h.applicationService.Get(r.Context(), applicationID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

type TransitionHistoryResponse struct {
	BaseResponse
	Transitions []*model.StatusTransition `json:"transitions"`
}

func (h *ApplicationHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	applicationID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	transitions, err := h.lifecycleService.History(r.Context(), applicationID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Application history error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TransitionHistoryResponse{
		BaseResponse: BaseResponse{Ok: true},
		Transitions:  transitions,
	})
}

// MineHandler lists the acting student's applications across internships.
func (h *ApplicationHandler) MineHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByStudent(r.Context(), actor.ID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Student applications listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Applications: applications,
	})
}

// ForInternshipHandler lists applications to one internship.
func (h *ApplicationHandler) ForInternshipHandler(w http.ResponseWriter, r *http.Request) {
	internshipID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship ID")
		return
	}

	applications, err := h.queryService.ApplicationsForInternship(r.Context(), internshipID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Internship applications listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Applications: applications,
	})
}

// ForCompanyHandler lists applications across the acting company's postings.
func (h *ApplicationHandler) ForCompanyHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	companyID, err := companyScope(r.Context(), h.userService, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	applications, err := h.queryService.ApplicationsForCompany(r.Context(), companyID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Company applications listing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Applications: applications,
	})
}
