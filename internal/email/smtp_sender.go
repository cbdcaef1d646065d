package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPSender sends contact-form submissions over SMTP using gomail.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendContactMessage composes and sends one email, synchronously. The
// submitter's address is used as From so the operator can reply directly.
func (s *SMTPSender) SendContactMessage(name, from, message string) error {
	m := s.composeMessage(name, from, message)

	d := gomail.NewDialer(
		s.cfg.SMTPHost,
		s.cfg.SMTPPort,
		s.cfg.Username,
		s.cfg.Password,
	)

	return d.DialAndSend(m)
}

func (s *SMTPSender) composeMessage(name, from, message string) *gomail.Message {
	m := gomail.NewMessage()
	if s.cfg.FromName != "" {
		m.SetAddressHeader("From", from, s.cfg.FromName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", s.cfg.Inbox)
	m.SetHeader("Subject", fmt.Sprintf("New contact form message from %s", name))
	m.SetBody("text/plain", plainBody(name, from, message))
	m.AddAlternative("text/html", htmlBody(name, from, message))
	return m
}

func plainBody(name, from, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", from)
	fmt.Fprintf(&b, "\nMessage:\n%s\n", message)
	return b.String()
}

func htmlBody(name, from, message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")

	return fmt.Sprintf(
		"<h3>New contact form message</h3>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(from),
		escaped,
	)
}
