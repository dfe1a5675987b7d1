// internal/pkg/email/types.go
package email

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeVerificationCode EmailType = "verification_code"
)

// Email represents an email message
type Email struct {
	To          []string  `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	Type        EmailType `json:"type"`
}

// VerificationCodeData is passed to the verification code template
type VerificationCodeData struct {
	SiteName  string
	UserEmail string
	Code      string
	ExpiresIn string
}
