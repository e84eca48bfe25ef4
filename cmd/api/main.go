// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/campusbridge/internhub/internal/audit"
	"github.com/campusbridge/internhub/internal/auth"
	"github.com/campusbridge/internhub/internal/config"
	"github.com/campusbridge/internhub/internal/email"
	"github.com/campusbridge/internhub/internal/handler"
	"github.com/campusbridge/internhub/internal/middleware"
	"github.com/campusbridge/internhub/internal/model"
	"github.com/campusbridge/internhub/internal/repository"
	"github.com/campusbridge/internhub/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	reportRepo := repository.NewReportRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	cycleRepo := repository.NewCycleRepository(db)
	readRepo := repository.NewNotificationReadRepository(db)
	transitionRepo := repository.NewStatusTransitionRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: 1 * time.Minute,
	})
	defer cacheService.Close()

	// Audit trail shared by the lifecycle services
	trail := audit.NewDBTrail(transitionRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService, cfg)
	companyService := service.NewCompanyService(companyRepo, emailService, trail, cfg)
	internshipService := service.NewInternshipService(internshipRepo, companyRepo)
	applicationService := service.NewApplicationService(applicationRepo, internshipRepo)
	lifecycleService := service.NewApplicationLifecycleService(applicationRepo, transitionRepo, trail)
	reportService := service.NewReportLifecycleService(reportRepo, evaluationRepo, trail)
	evaluationService := service.NewEvaluationService(evaluationRepo, reportRepo)
	queryService := service.NewQueryService(internshipRepo, applicationRepo, evaluationRepo, companyRepo)
	notificationService := service.NewNotificationService(applicationRepo, reportRepo, workshopRepo, cycleRepo, readRepo, cacheService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService, queryService)
	internshipHandler := handler.NewInternshipHandler(internshipService, queryService, userService)
	applicationHandler := handler.NewApplicationHandler(applicationService, lifecycleService, queryService, userService)
	reportHandler := handler.NewReportHandler(reportService)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService, userService)
	notificationHandler := handler.NewNotificationHandler(notificationService, userService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Get("/signup/verify", authHandler.VerifyHandler)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/signup", authHandler.SignupHandler)
				r.Post("/login", authHandler.LoginHandler)
			})
		})

		// Company registration is public; everything else about companies
		// is SCAD-gated below.
		r.With(chimw.AllowContentType("application/json")).
			Post("/companies", companyHandler.RegisterHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/internships", func(r chi.Router) {
				r.Get("/", internshipHandler.ListHandler)
				r.Get("/{id}", internshipHandler.GetHandler)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleCompany))
					r.Post("/", internshipHandler.CreateHandler)
					r.Put("/{id}", internshipHandler.UpdateHandler)
					r.Post("/{id}/close", internshipHandler.CloseHandler)
					r.Delete("/{id}", internshipHandler.DeleteHandler)
				})

				r.With(middleware.RequireRole(model.RoleStudent)).
					Post("/{id}/applications", applicationHandler.ApplyHandler)
				r.With(middleware.RequireRole(model.RoleCompany, model.RoleFaculty, model.RoleScad)).
					Get("/{id}/applications", applicationHandler.ForInternshipHandler)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Get("/mine", applicationHandler.MineHandler)
				r.Get("/{id}", applicationHandler.GetHandler)
				r.Get("/{id}/history", applicationHandler.HistoryHandler)
				r.With(middleware.RequireRole(model.RoleCompany, model.RoleFaculty)).
					Post("/{id}/transition", applicationHandler.TransitionHandler)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/mine", reportHandler.MineHandler)
				r.With(middleware.RequireRole(model.RoleFaculty, model.RoleScad)).
					Get("/queue", reportHandler.QueueHandler)
				r.Get("/{id}", reportHandler.GetHandler)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleStudent))
					r.Put("/", reportHandler.DraftHandler)
					r.Post("/{id}/submit", reportHandler.SubmitHandler)
				})

				r.With(middleware.RequireRole(model.RoleFaculty)).
					Post("/{id}/review", reportHandler.ReviewHandler)
			})

			r.Route("/evaluations", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleCompany))
					r.Put("/company", evaluationHandler.SaveCompanyEvaluationHandler)
					r.Get("/company", evaluationHandler.ListCompanyEvaluationsHandler)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleStudent))
					r.Put("/student", evaluationHandler.SaveStudentEvaluationHandler)
					r.Delete("/student/{internshipID}", evaluationHandler.DeleteStudentEvaluationHandler)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.ListHandler)
				r.Get("/top-rated", companyHandler.TopRatedHandler)
				r.Get("/{id}", companyHandler.GetHandler)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleScad))
					r.Get("/pending", companyHandler.PendingHandler)
					r.Post("/{id}/decision", companyHandler.DecideHandler)
				})
			})

			r.Route("/company", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleCompany))
				r.Get("/internships", internshipHandler.MineHandler)
				r.Get("/applications", applicationHandler.ForCompanyHandler)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.ListHandler)
				r.Post("/{key}/read", notificationHandler.MarkReadHandler)
				r.Post("/read-all", notificationHandler.MarkAllReadHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Internship{},
		&model.Application{},
		&model.Report{},
		&model.CompanyEvaluation{},
		&model.StudentEvaluation{},
		&model.Workshop{},
		&model.Cycle{},
		&model.NotificationRead{},
		&model.StatusTransition{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"error", rec,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
