// Package mailer delivers rendered emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"time"

	"via-proposito/internal/config"
	"via-proposito/internal/domain"
	"via-proposito/internal/logger"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// SMTPMailer implements domain.Mailer with go-mail. It dials per message.
type SMTPMailer struct {
	cfg     config.SMTPConfig
	timeout time.Duration
}

func NewSMTPMailer(cfg config.SMTPConfig) domain.Mailer {
	return &SMTPMailer{cfg: cfg, timeout: defaultTimeout}
}

func (m *SMTPMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	message, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		logger.Get().Error("Failed to send email",
			zap.String("host", m.cfg.Host),
			zap.Int("port", m.cfg.Port),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	logger.Get().Info("Email sent", zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(m.timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

// buildMessage sets the plain text body first and the HTML as its alternative.
func (m *SMTPMailer) buildMessage(msg *domain.EmailMessage) (*mail.Msg, error) {
	message := mail.NewMsg()
	if err := message.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", m.cfg.From, err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		message.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}
	return message, nil
}
