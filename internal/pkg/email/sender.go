package email

import (
	"fmt"

	"tripplanner_backend/internal/config"

	"gopkg.in/gomail.v2"
)

type SMTPSender struct {
	dialer      *gomail.Dialer
	fromEmail   string
	fromName    string
	frontendURL string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromEmail:   cfg.FromEmail,
		fromName:    cfg.FromName,
		frontendURL: cfg.FrontendURL,
	}
}

func (s *SMTPSender) SendConfirmation(toEmail, token string) error {
	link := fmt.Sprintf("%s/confirm-email?token=%s", s.frontendURL, token)
	body, err := renderConfirmation(link)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return s.send(toEmail, "Confirm your email", body)
}

func (s *SMTPSender) SendPasswordReset(toEmail, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	body, err := renderPasswordReset(link)
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}
	return s.send(toEmail, "Reset your password", body)
}

func (s *SMTPSender) send(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}
