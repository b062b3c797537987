package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds connection settings for a plain-auth SMTP relay.
type SMTPConfig struct {
	Host   string
	Port   string
	User   string
	Pass   string
	Sender string
}

// SMTPSender delivers notifications over SMTP, for local development where
// SES is not available.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if s.cfg.Host == "" || s.cfg.Port == "" {
		return fmt.Errorf("smtp host and port are required")
	}
	if s.cfg.Sender == "" {
		return fmt.Errorf("mail sender address is required")
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	msg := buildMessage(s.cfg.Sender, to, subject, textBody, htmlBody)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/alternative message carrying both the
// plain-text and html bodies.
func buildMessage(from, to, subject, textBody, htmlBody string) []byte {
	const boundary = "registro-alt"

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(textBody + "\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(htmlBody + "\r\n")

	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String())
}

var _ Sender = (*SMTPSender)(nil)
