package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer abstrai o envio de e-mail; implementações trocáveis sem mexer
// nos chamadores.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

type Email struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// ------------------------------
// SendGrid
// ------------------------------

type SendGridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewSendGridMailer(apiKey, from, fromName string) *SendGridMailer {
	if apiKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Email) error {
	from := mail.NewEmail(m.fromName, m.from)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}
	return nil
}

// ------------------------------
// Fallback sem credenciais
// ------------------------------

// LogMailer só registra no log; usado quando SENDGRID_API_KEY não está
// configurada (dev/local).
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Email) error {
	log.Printf("mail (not sent) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
