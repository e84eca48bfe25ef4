// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./application.go -destination=../mocks/mock_application_repository.go -package=mocks ApplicationRepositoryIface
//go:generate mockgen -source=./report.go -destination=../mocks/mock_report_repository.go -package=mocks ReportRepositoryIface
//go:generate mockgen -source=./evaluation.go -destination=../mocks/mock_evaluation_repository.go -package=mocks EvaluationRepositoryIface
//go:generate mockgen -source=./internship.go -destination=../mocks/mock_internship_repository.go -package=mocks InternshipRepositoryIface
//go:generate mockgen -source=./status_transition.go -destination=../mocks/mock_status_transition_repository.go -package=mocks StatusTransitionRepositoryIface
//go:generate mockgen -source=./notification_read.go -destination=../mocks/mock_notification_read_repository.go -package=mocks NotificationReadRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./workshop.go -destination=../mocks/mock_workshop_repository.go -package=mocks WorkshopRepositoryIface,CycleRepositoryIface
//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
