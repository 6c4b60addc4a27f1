// Package mail sends transactional email over SMTP. Sends are
// fire-and-forget: the booking flow never blocks on, or fails because of,
// the mail server.
package mail

import (
	"log"

	"gopkg.in/gomail.v2"

	"github.com/luminasalon/salon-manager/internal/config"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

// Send dispatches the message on a goroutine and returns immediately.
// Failures are logged; no delivery confirmation is tracked.
func (m *Mailer) Send(to, subject, htmlBody string) {
	go func() {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", htmlBody)

		d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
		if err := d.DialAndSend(msg); err != nil {
			log.Printf("mail: send to %s failed: %v", to, err)
		}
	}()
}
