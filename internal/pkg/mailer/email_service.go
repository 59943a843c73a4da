// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"net/mail"

	"ara-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	// SendHTML sends one message to every recipient. from may carry a display name
	// ("ARA <ara@company.com>"); an empty from falls back to the SMTP account.
	SendHTML(from string, recipients []string, subject, body string) error
}

// Sender delivers a composed message; satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return NewEmailServiceWithSender(gomail.NewDialer(host, port, username, password), username, senderName, log)
}

func NewEmailServiceWithSender(sender Sender, senderEmail, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) SendHTML(from string, recipients []string, subject, body string) error {
	name := s.senderName
	if from == "" {
		from = s.senderEmail
	} else if address, err := mail.ParseAddress(from); err == nil {
		from = address.Address
		if address.Name != "" {
			name = address.Name
		}
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, name)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.sender.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send email", map[string]interface{}{
			"subject":    subject,
			"recipients": recipients,
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Email sent", map[string]interface{}{
		"subject":    subject,
		"recipients": recipients,
	})
	return nil
}
