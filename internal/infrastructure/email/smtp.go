package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService sends subscription lifecycle mail. When disabled it
// swallows sends so local development works without a mail server.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) NotifySubscriptionStatusChange(ctx context.Context, email, oldStatus, newStatus string) error {
	subject := "Your Subscription Status Changed"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Update</h2>
			<p>Your subscription status changed from <strong>%s</strong> to <strong>%s</strong>.</p>
			<p>If you have questions about this change, reply to this email and we'll help.</p>
		</body>
		</html>
	`, oldStatus, newStatus)

	plainBody := fmt.Sprintf(`
Subscription Update

Your subscription status changed from %s to %s.

If you have questions about this change, reply to this email and we'll help.
	`, oldStatus, newStatus)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) NotifySubscriptionCancelled(ctx context.Context, email string, immediate bool) error {
	subject := "Your Subscription Has Been Cancelled"

	var accessNote string
	if immediate {
		accessNote = "Your access has ended and any applicable refund will be processed shortly."
	} else {
		accessNote = "You keep full access until the end of your current billing period."
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Cancelled</h2>
			<p>Your subscription has been cancelled.</p>
			<p>%s</p>
			<p>You can resubscribe at any time from your account page.</p>
		</body>
		</html>
	`, accessNote)

	plainBody := fmt.Sprintf(`
Subscription Cancelled

Your subscription has been cancelled.

%s

You can resubscribe at any time from your account page.
	`, accessNote)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	if !s.config.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
