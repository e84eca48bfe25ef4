// internal/email/mailer/company_decision.go
package mailer

import "github.com/campusbridge/internhub/internal/email"

// CompanyDecisionTemplateData contains data for the registration decision
// email template
type CompanyDecisionTemplateData struct {
	CompanyName string
	Accepted    bool
	PortalLink  string
}

// SendCompanyDecisionEmail notifies a company contact of the SCAD office's
// registration decision.
func SendCompanyDecisionEmail(s *email.Service, to, companyName string, accepted bool, portalLink string) error {
	templateData := CompanyDecisionTemplateData{
		CompanyName: companyName,
		Accepted:    accepted,
		PortalLink:  portalLink,
	}

	subject := "Your InternHub registration was not approved"
	if accepted {
		subject = "Your InternHub registration has been approved"
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "InternHub",
		Subject:      subject,
		TemplateName: "company_decision",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
