package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/rotisserie/eris"

	"github.com/sponsorlane/outreach-cli/internal/config"
)

// ErrNotConfigured indicates missing SMTP credentials. It distinguishes a
// configuration problem from a transport failure in the audit trail.
var ErrNotConfigured = eris.New("smtp: not configured")

// Sender delivers a message and returns a provider message id when one is
// available.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// SMTPSender delivers messages over SMTP with optional STARTTLS.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates an SMTPSender from config.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// From returns the effective sender address: the configured from address,
// falling back to the SMTP user.
func (s *SMTPSender) From() string {
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return s.cfg.User
}

// Send delivers the message. It fails with ErrNotConfigured when host,
// user, or password are missing. SMTP does not reliably expose a message
// id, so the returned id is empty on success.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) (string, error) {
	if s.cfg.Host == "" || s.cfg.User == "" || s.cfg.Pass == "" {
		return "", eris.Wrap(ErrNotConfigured, "smtp: missing host/user/pass settings")
	}

	if msg.From == "" {
		msg.From = s.From()
	}

	raw, err := Build(msg)
	if err != nil {
		return "", err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return "", eris.Wrapf(err, "smtp: dial %s", addr)
	}
	defer func() { _ = client.Close() }()

	if err := client.Hello("localhost"); err != nil {
		return "", eris.Wrap(err, "smtp: hello")
	}

	if s.cfg.UseTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return "", eris.Wrap(err, "smtp: starttls")
		}
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return "", eris.Wrap(err, "smtp: auth")
	}

	if err := client.Mail(msg.From); err != nil {
		return "", eris.Wrap(err, "smtp: mail from")
	}
	if err := client.Rcpt(msg.To); err != nil {
		return "", eris.Wrap(err, "smtp: rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return "", eris.Wrap(err, "smtp: data")
	}
	if _, err := w.Write(raw); err != nil {
		return "", eris.Wrap(err, "smtp: write message")
	}
	if err := w.Close(); err != nil {
		return "", eris.Wrap(err, "smtp: close data")
	}

	if err := client.Quit(); err != nil {
		return "", eris.Wrap(err, "smtp: quit")
	}
	return "", nil
}
