// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type SignupResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondWithError(w, http.StatusConflict, "Email already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user,omitempty"`
	Token string      `json:"token,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Authenticate(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithJSON(w, http.StatusUnauthorized, LoginResponse{
				Error: "Invalid email or password",
			})
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var input service.VerifyInput

	query := r.URL.Query()
	input.Code = query.Get("code")
	input.UserID = query.Get("user")

	if err := h.userService.VerifyEmail(r.Context(), input); err != nil {
		slog.ErrorContext(r.Context(), "User verification error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInvalidVerificationCode):
			respondWithError(w, http.StatusBadRequest, "Invalid verification code")
		case errors.Is(err, domain.ErrAlreadyVerified):
			respondWithError(w, http.StatusBadRequest, "User already verified")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Email verified successfully"})
}
