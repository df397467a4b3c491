package services

import (
	"log"

	"gopkg.in/gomail.v2"
)

// MailSender delivers a single transactional email.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// Mailer sends mail through an SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	host   string
	from   string
}

// NewMailer constructs a Mailer. With an empty host the mailer is a no-op
// that only logs, so the server can run without an SMTP relay in development.
func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		host:   host,
		from:   from,
	}
}

// Send delivers a single HTML email. There are no retries; a transport
// failure is returned to the caller.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if m.host == "" {
		log.Printf("[Mail] SMTP not configured, dropping %q to %s", subject, to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("[Mail] Failed to send %q to %s: %v", subject, to, err)
		return err
	}

	return nil
}
