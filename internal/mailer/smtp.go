package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTP sends through gomail. Each Send dials a fresh connection; the
// volume here is test mails and the occasional notification, not a
// queue.
type SMTP struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (s *SMTP) Send(ctx context.Context, e Email) error {
	if len(e.To) == 0 {
		return fmt.Errorf("mailer: at least one recipient required")
	}
	if e.From == "" {
		return fmt.Errorf("mailer: from address required")
	}
	if e.TextBody == "" && e.HTMLBody == "" {
		return fmt.Errorf("mailer: empty body")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.From, e.FromName)
	m.SetHeader("To", e.To...)
	if len(e.Cc) > 0 {
		m.SetHeader("Cc", e.Cc...)
	}
	if len(e.Bcc) > 0 {
		m.SetHeader("Bcc", e.Bcc...)
	}
	m.SetHeader("Subject", e.Subject)
	switch {
	case e.TextBody != "" && e.HTMLBody != "":
		m.SetBody("text/plain", e.TextBody)
		m.AddAlternative("text/html", e.HTMLBody)
	case e.HTMLBody != "":
		m.SetBody("text/html", e.HTMLBody)
	default:
		m.SetBody("text/plain", e.TextBody)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
