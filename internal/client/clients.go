package client

import (
	"github.com/samuelerdtman/la-palabra-del-dia/internal/config"
)

type Clients struct {
	*Mailer
	*PushoverAPI
}

func InitClients(cfg *config.Config) Clients {
	return Clients{
		Mailer:      NewMailer(cfg.SMTP),
		PushoverAPI: NewPushoverAPI(cfg.Pushover.Token),
	}
}
