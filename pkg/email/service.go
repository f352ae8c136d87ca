package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends transactional email through SendGrid.
type Service struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *log.Logger
}

// NewService creates the mailer. An empty apiKey disables sending; calls
// become logged no-ops so local development works without credentials.
func NewService(apiKey, fromEmail, fromName string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	var client *sendgrid.Client
	if apiKey != "" {
		client = sendgrid.NewSendClient(apiKey)
	}
	return &Service{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

func (s *Service) send(toEmail, subject, plainText, htmlBody string) error {
	if s.client == nil {
		s.logger.Printf("ℹ️ Email disabled, skipping send to %s: %s", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)

	resp, err := s.client.Send(message)
	if err != nil {
		s.logger.Printf("❌ Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		s.logger.Printf("❌ SendGrid rejected email to %s: status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	s.logger.Printf("✅ Email sent to %s: %s", toEmail, subject)
	return nil
}

// SendImportSummary notifies the admin after a CSV import finishes.
func (s *Service) SendImportSummary(toEmail, filename string, added, skipped int) error {
	subject := fmt.Sprintf("Lead import finished: %s", filename)
	plain := fmt.Sprintf("Import of %s finished.\nNew leads: %d\nSkipped rows: %d\n", filename, added, skipped)
	html := fmt.Sprintf(
		"<p>Import of <strong>%s</strong> finished.</p><ul><li>New leads: %d</li><li>Skipped rows: %d</li></ul>",
		filename, added, skipped,
	)
	return s.send(toEmail, subject, plain, html)
}

// SendApplicationNotification notifies the admin of a new job
// application. jobRef is whatever identifies the posting to the admin,
// usually its title.
func (s *Service) SendApplicationNotification(toEmail, jobRef, applicantName, applicantEmail string) error {
	subject := fmt.Sprintf("New application: %s", jobRef)
	plain := fmt.Sprintf("%s (%s) applied for %s.\n", applicantName, applicantEmail, jobRef)
	html := fmt.Sprintf(
		"<p><strong>%s</strong> (%s) applied for <strong>%s</strong>.</p>",
		applicantName, applicantEmail, jobRef,
	)
	return s.send(toEmail, subject, plain, html)
}
