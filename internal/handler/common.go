// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusbridge/internhub/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps the shared business-rule error kinds to HTTP
// status codes. Handlers call it from their default error paths so every
// kind renders a specific message.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrMissingComment),
		errors.Is(err, domain.ErrNotFinalizable),
		errors.Is(err, domain.ErrReportSubmitted),
		errors.Is(err, domain.ErrReportNotSubmitted),
		errors.Is(err, domain.ErrEvaluationInUse),
		errors.Is(err, domain.ErrInternshipClosed),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrCompanyNotAccepted),
		errors.Is(err, domain.ErrAlreadyDecided):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrInternshipNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrEvaluationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrDuplicateEvaluation),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownStatus):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
