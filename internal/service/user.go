// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campusbridge/internhub/internal/auth"
	"github.com/campusbridge/internhub/internal/config"
	"github.com/campusbridge/internhub/internal/domain"
	"github.com/campusbridge/internhub/internal/email"
	"github.com/campusbridge/internhub/internal/email/mailer"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService is the identity provider: it registers accounts, verifies
// email addresses, and exchanges credentials for tokens. Lifecycle
// operations downstream trust the actor it resolves.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email           string         `json:"email" validate:"required,email"`
	FirstName       string         `json:"first_name" validate:"required"`
	LastName        string         `json:"last_name"`
	Password        string         `json:"password" validate:"required,min=8"`
	ConfirmPassword string         `json:"confirm_password" validate:"required,min=8,eqfield=Password"`
	Role            model.UserRole `json:"role" validate:"required,oneof=student company faculty scad"`
	Major           string         `json:"major"`
	Semester        int            `json:"semester"`
	CompanyID       *uuid.UUID     `json:"company_id"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles the complete user registration process
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// Start transaction
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Check if user exists
	existingUser, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	verificationCode := generateVerificationCode()

	user := &model.User{
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Role:             input.Role,
		Status:           model.UserStatusPending,
		Major:            input.Major,
		Semester:         input.Semester,
		CompanyID:        input.CompanyID,
		PasswordHash:     hashedPassword,
		VerificationCode: verificationCode,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	// Generate verification URL
	verificationLink := fmt.Sprintf(
		"%s/api/auth/signup/verify?code=%s&user=%s",
		s.config.BaseURL,
		verificationCode,
		user.ID.String(),
	)

	if s.emailService != nil {
		if err := mailer.SendVerificationEmail(s.emailService, user.Email, user.FirstName, verificationLink); err != nil {
			slog.ErrorContext(ctx, "sending verification email", "error", err, "userID", user.ID)
		}
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, string(user.Role), user.FirstName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &SignupOutput{
		User:  user,
		Token: token,
	}, nil
}

type VerifyInput struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// VerifyEmail handles email verification
func (s *UserService) VerifyEmail(ctx context.Context, input VerifyInput) error {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == model.UserStatusActive {
		return domain.ErrAlreadyVerified
	}
	if user.VerificationCode == "" || user.VerificationCode != input.Code {
		return domain.ErrInvalidVerificationCode
	}

	user.Status = model.UserStatusActive
	user.VerificationCode = ""
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Authenticate verifies user credentials and returns a token
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*SignupOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, string(user.Role), user.FirstName)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{
		User:  user,
		Token: token,
	}, nil
}

// ResolveActor loads the acting user's identity record. Handlers use it to
// scope company-role requests to their company.
func (s *UserService) ResolveActor(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func generateVerificationCode() string {
	code := make([]byte, 16)
	if _, err := rand.Read(code); err != nil {
		// crypto/rand failing is unrecoverable here
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}
	return hex.EncodeToString(code)
}
