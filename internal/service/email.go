package service

import (
	"context"
	"fmt"
	"time"

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

func (s *emailService) SendInvitation(ctx context.Context, email, fundName, inviterName, inviteURL string) error {
	subject := fmt.Sprintf("You have been invited to join %s", fundName)
	body := fmt.Sprintf(`Hello,

%s has invited you to join %s on the investor portal.

Accept the invitation here:

%s

The invitation expires in 7 days.

Best regards,
The Investor Portal Team`, inviterName, fundName, inviteURL)

	return s.send(email, subject, body)
}

func (s *emailService) SendInviteReminder(ctx context.Context, email, fundName, inviteURL string, expiresAt time.Time) error {
	subject := fmt.Sprintf("Reminder: your invitation to %s is waiting", fundName)
	body := fmt.Sprintf(`Hello,

You have a pending invitation to join %s on the investor portal.

Accept it here before it expires on %s:

%s

Best regards,
The Investor Portal Team`, fundName, expiresAt.Format("January 2, 2006"), inviteURL)

	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
