package service

import (
	"fmt"

	"github.com/algo-odyssey/backend/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Notifier is the outbound email collaborator used by the reminder duty.
type Notifier interface {
	Send(to, subject, body string) error
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewNotifier(cfg *config.Config) Notifier {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST is not set. Reminder emails will fail until configured.")
	}
	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (n *smtpNotifier) Send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
