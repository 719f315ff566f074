package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// SMTPMailer delivers plain-text mail through an unauthenticated relay.
type SMTPMailer struct {
	addr string
	from string
}

// NewSMTPMailer returns nil when no host is configured, which disables the
// mail channel entirely.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.SMTPFrom,
	}
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
