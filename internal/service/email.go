package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"avocado-hub-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	operator  string
}

// NewEmailService wires the SendGrid client used for operator alerts.
func NewEmailService(apiKey, fromEmail, fromName, operatorEmail string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		operator:  operatorEmail,
	}
}

func (s *emailService) SendDriftAlert(ctx context.Context, ledger string, drifts []domain.AggregateDrift) error {
	if len(drifts) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The nightly audit found %d %s record(s) whose aggregates no longer match their ledger rows:\n\n", len(drifts), ledger)
	for _, d := range drifts {
		fmt.Fprintf(&b, "- %s (id %d): stored fruits %d, expected %d; stored money %.2f, expected %.2f\n",
			d.Name, d.PartyID, d.StoredFruits, d.ExpectedFruits, d.StoredMoney, d.ExpectedMoney)
	}
	b.WriteString("\nRun the recalculate endpoint for the affected records or enable automatic repair.\n")

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.operator)
	subject := fmt.Sprintf("Avocado Hub: %s aggregate drift detected", ledger)
	message := mail.NewSingleEmail(from, subject, to, b.String(), "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send drift alert: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
