// Package email sends transactional mail over SMTP. When email is disabled
// in configuration a no-op service is returned so callers never branch.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"gymstack/internal/shared/config"
	"gymstack/internal/shared/logger"
)

// Service sends the transactional emails the platform produces.
type Service interface {
	SendStaffWelcomeEmail(to, name, organizationName string) error
	SendMembershipReceiptEmail(to, memberName, planName string, amountCents uint64, currency string) error
}

// NewServiceFromConfig returns the SMTP service, or a no-op when disabled.
func NewServiceFromConfig(cfg *config.EmailConfig, log logger.Interface) Service {
	if !cfg.Enabled {
		return &noopService{logger: log.Named("email")}
	}
	return NewSMTPService(cfg, log)
}

type SMTPService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPService(cfg *config.EmailConfig, log logger.Interface) *SMTPService {
	return &SMTPService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: log.Named("email"),
	}
}

func (s *SMTPService) SendStaffWelcomeEmail(to, name, organizationName string) error {
	subject := fmt.Sprintf("Welcome to %s", organizationName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>A staff account has been created for you at %s.</p>
			<p>Sign in with this email address to get started.</p>
		</body>
		</html>
	`, name, organizationName)
	plainBody := fmt.Sprintf("Welcome, %s!\n\nA staff account has been created for you at %s.\nSign in with this email address to get started.\n", name, organizationName)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) SendMembershipReceiptEmail(to, memberName, planName string, amountCents uint64, currency string) error {
	amount := fmt.Sprintf("%.2f %s", float64(amountCents)/100, currency)
	subject := "Your membership receipt"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thanks, %s!</h2>
			<p>Your membership on the <strong>%s</strong> plan is confirmed.</p>
			<p>Amount paid: %s</p>
		</body>
		</html>
	`, memberName, planName, amount)
	plainBody := fmt.Sprintf("Thanks, %s!\n\nYour membership on the %s plan is confirmed.\nAmount paid: %s\n", memberName, planName, amount)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send email", "error", err, "to", to, "subject", subject)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type noopService struct {
	logger logger.Interface
}

func (n *noopService) SendStaffWelcomeEmail(to, name, organizationName string) error {
	n.logger.Debugw("email disabled, skipping welcome email", "to", to)
	return nil
}

func (n *noopService) SendMembershipReceiptEmail(to, memberName, planName string, amountCents uint64, currency string) error {
	n.logger.Debugw("email disabled, skipping receipt email", "to", to)
	return nil
}
