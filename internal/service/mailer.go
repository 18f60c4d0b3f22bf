package service

import (
	"context"
	"errors"

	"healthconnect/config"

	"github.com/go-gomail/gomail"
)

// ErrNotConfigured is returned when a transport is missing credentials. The
// caller treats it like any other send failure; it only differs in logging.
var ErrNotConfigured = errors.New("transport not configured")

// EmailSender performs exactly one delivery attempt per call. No retry.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	Enabled() bool
}

type smtpEmailSender struct {
	cfg config.EmailConfig
}

func NewEmailSender(cfg config.EmailConfig) EmailSender {
	return &smtpEmailSender{cfg: cfg}
}

func (s *smtpEmailSender) Enabled() bool {
	return s.cfg.Enabled()
}

func (s *smtpEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !s.cfg.Enabled() {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
