package service

import (
	"context"
	"fmt"

	"deckhub-backend/internal/domain"
	"deckhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendSignupAlert(ctx context.Context, adminEmail string, lead *domain.Lead) error {
	subject := fmt.Sprintf("New lead: %s", lead.Email)
	plainText := fmt.Sprintf("%s (%s) signed up via %s.", lead.Name, lead.Email, lead.Source)
	htmlContent := fmt.Sprintf(`<p><strong>%s</strong> (%s) signed up via %s.</p><p>Company: %s</p>`,
		lead.Name, lead.Email, lead.Source, lead.Company)
	return s.send(adminEmail, subject, plainText, htmlContent)
}

func (s *emailService) SendAccessRequestAlert(ctx context.Context, adminEmail string, lead *domain.Lead, deckTitle string) error {
	subject := fmt.Sprintf("Deck access request: %s", deckTitle)
	plainText := fmt.Sprintf("%s requested access to %s.", lead.Email, deckTitle)
	htmlContent := fmt.Sprintf(`<p><strong>%s</strong> requested access to <strong>%s</strong>.</p>`,
		lead.Email, deckTitle)
	return s.send(adminEmail, subject, plainText, htmlContent)
}

func (s *emailService) SendAdminDigest(ctx context.Context, adminEmail string, unread []domain.AdminNotification) error {
	if len(unread) == 0 {
		return nil
	}
	subject := fmt.Sprintf("Deck hub digest: %d unread notifications", len(unread))
	plainText := ""
	htmlContent := "<ul>"
	for _, n := range unread {
		plainText += fmt.Sprintf("- [%s] %s: %s\n", n.Type, n.Title, n.Message)
		htmlContent += fmt.Sprintf("<li><strong>%s</strong>: %s</li>", n.Title, n.Message)
	}
	htmlContent += "</ul>"
	return s.send(adminEmail, subject, plainText, htmlContent)
}

func (s *emailService) send(to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
