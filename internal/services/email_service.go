package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/arcmarket/arc-api/internal/config"
)

// EmailService handles outbound marketplace mail
type EmailService struct {
	cfg config.EmailConfig
}

// NewEmailService creates a new EmailService
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{
		cfg: cfg,
	}
}

// SendOfferNotification notifies an item owner that an offer was placed
func (s *EmailService) SendOfferNotification(to, itemName string, price float64) error {
	subject := "ARC Market - New Offer Received"
	body := fmt.Sprintf(`
Hello,

You received an offer of %g on your item "%s".

Visit your profile to review and approve the offer.

ARC Market Team
`, price, itemName)

	return s.SendEmail(to, subject, body)
}

// SendEmail sends an email through the configured SMTP relay
func (s *EmailService) SendEmail(to, subject, body string) error {
	smtpHost := s.cfg.SMTPHost
	smtpPort := s.cfg.SMTPPort
	from := s.cfg.FromEmail

	message := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", from, to, subject, body))

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, smtpHost)

	addr := fmt.Sprintf("%s:%d", smtpHost, smtpPort)

	if err := smtp.SendMail(addr, auth, from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsEmailValid checks if an email address is valid
func (s *EmailService) IsEmailValid(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	domainParts := strings.Split(parts[1], ".")
	return len(domainParts) >= 2 && domainParts[len(domainParts)-1] != ""
}
