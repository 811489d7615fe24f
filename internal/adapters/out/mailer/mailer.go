// Package mailer sends transactional email over SMTP.
package mailer

import (
	"io"

	"gopkg.in/gomail.v2"
)

// SMTPMailer implements ports.Mailer on a gomail dialer. One dialer is
// shared; gomail opens a connection per send, which is fine at the volume
// checkout confirmations and stock alerts produce.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendEmail(to, subject, htmlBody string) error {
	msg := m.newMessage(to, subject, htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendEmailWithAttachment(
	to, subject, htmlBody string, attachment []byte, filename string,
) error {
	msg := m.newMessage(to, subject, htmlBody)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) newMessage(to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}
