// internal/email/mailer/account_verification.go
package mailer

import "github.com/campusbridge/internhub/internal/email"

// VerificationTemplateData contains data for the verification email template
type VerificationTemplateData struct {
	FirstName        string
	VerificationLink string
}

// SendVerificationEmail sends a verification email to the user
func SendVerificationEmail(s *email.Service, to, firstName, verificationLink string) error {
	templateData := VerificationTemplateData{
		FirstName:        firstName,
		VerificationLink: verificationLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "InternHub",
		Subject:      "Welcome to InternHub! Please verify your email",
		TemplateName: "account_verification",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
