package internhub

import "embed"

// EmailFS holds the embedded email template pairs under templates/emails.
//
//go:embed templates/emails
var EmailFS embed.FS
