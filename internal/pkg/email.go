package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // display sender, may equal Username
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// DonationReceiptHTML renders the thank-you receipt sent to registered donors.
func DonationReceiptHTML(name string, amount float64, target string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Thank you for your donation of <b>$%.2f</b> to <b>%s</b>.</p><p>— The EquiLearn team</p>`,
		name, amount, target)
}
