package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/peopledesk/peopledesk-backend-go/internal/config"
)

// Message is a single outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends mail. Implementations must be safe for concurrent use;
// the group notification flow dispatches sends from multiple goroutines.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a Mailer backed by plain SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) Send(ctx context.Context, msg Message) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", msg.To, "subject", msg.Subject)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", msg.To)
	headers += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	payload := []byte(headers + msg.Body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{msg.To}, payload); err != nil {
		slog.Error("Failed to send email", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	slog.Info("Email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
