package client

import (
	"fmt"

	"github.com/samuelerdtman/la-palabra-del-dia/internal/config"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendAccountLink mails the account link; the link is the only way back to
// an account, there is no password.
func (m *Mailer) SendAccountLink(to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Account")
	msg.SetBody("text/plain", fmt.Sprintf("Open your account by clicking this link, %s", link))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send account email: %w", err)
	}
	return nil
}
