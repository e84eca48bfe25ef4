// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("record was modified concurrently")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Verification-related errors
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrAlreadyVerified         = errors.New("already verified")

	// Company-related errors
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyNotAccepted = errors.New("company registration is not accepted")
	ErrAlreadyDecided     = errors.New("company registration already decided")

	// Internship-related errors
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInternshipClosed   = errors.New("internship is closed")
	ErrDeadlinePassed     = errors.New("application deadline has passed")

	// Application lifecycle errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this internship")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrMissingComment      = errors.New("a comment is required for this decision")
	ErrUnknownStatus       = errors.New("unknown status")

	// Report/evaluation lifecycle errors
	ErrReportNotFound      = errors.New("report not found")
	ErrReportSubmitted     = errors.New("report has already been submitted")
	ErrReportNotSubmitted  = errors.New("report has not been submitted")
	ErrNotFinalizable      = errors.New("report requires a matching company evaluation before submission")
	ErrEvaluationNotFound  = errors.New("evaluation not found")
	ErrDuplicateEvaluation = errors.New("an evaluation already exists for this internship")
	ErrEvaluationInUse     = errors.New("evaluation backs a submitted report and cannot be deleted")
)
