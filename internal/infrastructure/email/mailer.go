package email

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"care-connect.backend/internal/config"
	"care-connect.backend/pkg/logger"
)

// Sender delivers transactional mail. Implementations must not block the
// calling request path on SMTP round trips.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, token string)
	SendPasswordResetEmail(ctx context.Context, to, token string)
	SendVerificationOutcomeEmail(ctx context.Context, to string, approved bool, reason string)
}

// dialAndSend is swapped in tests
var dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// SMTPSender sends mail through the configured SMTP relay
type SMTPSender struct {
	cfg *config.Config
}

// NewSMTPSender creates an SMTP-backed sender
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendVerificationEmail sends the email-address confirmation link
func (s *SMTPSender) SendVerificationEmail(ctx context.Context, to, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.Email.BaseURL, token)
	body := fmt.Sprintf(`<p>Welcome to CareConnect.</p>
<p>Please confirm your email address by clicking the link below:</p>
<p><a href="%s">Verify my email</a></p>
<p>The link expires in 24 hours.</p>`, link)
	s.send(ctx, to, "Confirm your email address", body)
}

// SendPasswordResetEmail sends the password reset link
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, to, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Email.BaseURL, token)
	body := fmt.Sprintf(`<p>A password reset was requested for your CareConnect account.</p>
<p><a href="%s">Reset my password</a></p>
<p>The link expires in 1 hour. If you did not request this, you can ignore this email.</p>`, link)
	s.send(ctx, to, "Reset your password", body)
}

// SendVerificationOutcomeEmail notifies a worker of the review decision
func (s *SMTPSender) SendVerificationOutcomeEmail(ctx context.Context, to string, approved bool, reason string) {
	subject := "Your verification was approved"
	body := `<p>Good news. Your worker verification has been approved and your profile is now visible to clients.</p>`
	if !approved {
		subject = "Your verification needs attention"
		body = fmt.Sprintf(`<p>Your worker verification could not be approved.</p>
<p>Reason: %s</p>
<p>You can amend your documents and resubmit from your dashboard.</p>`, reason)
	}
	s.send(ctx, to, subject, body)
}

// send delivers in a goroutine so handlers never wait on SMTP
func (s *SMTPSender) send(ctx context.Context, to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUser,
		s.cfg.Email.SMTPPassword,
	)

	go func() {
		if err := dialAndSend(d, m); err != nil {
			logger.Error(ctx, "Failed to send email",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}
