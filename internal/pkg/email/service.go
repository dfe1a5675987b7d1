// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/config"
)

// EmailService delivers transactional mail over SMTP
type EmailService struct {
	config    config.EmailConfig
	siteName  string
	codeTTL   time.Duration
	templates map[EmailType]*template.Template
	send      sendFunc
	log       logrus.FieldLogger
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, log logrus.FieldLogger) *EmailService {
	return &EmailService{
		config:   cfg.Email,
		siteName: cfg.Email.FromName,
		codeTTL:  cfg.OTP.TTL,
		templates: map[EmailType]*template.Template{
			EmailTypeVerificationCode: template.Must(template.New("verification_code").Parse(verificationCodeTemplate)),
		},
		send: smtp.SendMail,
		log:  log,
	}
}

// SendEmail sends an email. The SMTP exchange itself does not observe ctx,
// so a cancelled ctx only prevents the send from starting.
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.sendSMTPEmail(email); err != nil {
		return fmt.Errorf("failed to send %s email: %w", email.Type, err)
	}

	s.log.WithFields(logrus.Fields{
		"type": email.Type,
		"to":   email.To,
	}).Info("email sent")
	return nil
}

// SendCode delivers a verification code
func (s *EmailService) SendCode(ctx context.Context, userEmail, code string) error {
	data := VerificationCodeData{
		SiteName:  s.siteName,
		UserEmail: userEmail,
		Code:      code,
	}
	if s.codeTTL > 0 {
		data.ExpiresIn = s.codeTTL.String()
	}

	htmlContent, err := s.renderTemplate(EmailTypeVerificationCode, data)
	if err != nil {
		return fmt.Errorf("failed to render verification email template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{userEmail},
		Subject:     fmt.Sprintf("Your %s verification code", s.siteName),
		HTMLContent: htmlContent,
		Type:        EmailTypeVerificationCode,
	})
}

func (s *EmailService) renderTemplate(t EmailType, data interface{}) (string, error) {
	tmpl, ok := s.templates[t]
	if !ok {
		return "", fmt.Errorf("template %s not found", t)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const verificationCodeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2 style="color: #ff4d4d;">{{.SiteName}}</h2>
    <p>Hi {{.UserEmail}},</p>
    <p>Your verification code is:</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
    {{if .ExpiresIn}}<p>The code expires in {{.ExpiresIn}}.</p>{{end}}
    <p>If you did not request this code you can ignore this email.</p>
</body>
</html>
`
