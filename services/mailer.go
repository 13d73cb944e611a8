package services

import "github.com/soletrade/soletrade/config"

// Mailer delivers the signup auth code. The default implementation only
// logs; a real SMTP sender can be swapped in at wiring time.
type Mailer interface {
	SendAuthCode(email, code string) error
}

type LogMailer struct{}

func (m LogMailer) SendAuthCode(email, code string) error {
	config.Logger.Infof("auth code for %s: %s", email, code)

	return nil
}
