package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// EmailConfig holds SMTP settings for the email channel.
type EmailConfig struct {
	Host     string
	Port     int
	From     string
	Password string
	To       string
}

// Email delivers events over SMTP with STARTTLS.
type Email struct {
	cfg EmailConfig
}

func NewEmail(cfg EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Notify(_ context.Context, ev Event) error {
	msg := buildEmailMessage(e.cfg.From, e.cfg.To, "Career Assistant: "+ev.Subject, ev.Body)

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	auth := smtp.PlainAuth("", e.cfg.From, e.cfg.Password, e.cfg.Host)
	if err := smtp.SendMail(addr, auth, e.cfg.From, []string{e.cfg.To}, msg); err != nil {
		return fmt.Errorf("email: %w", err)
	}
	return nil
}

func buildEmailMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}
