// Package mail is the delivery channel for OTP codes.
package mail

import (
	"fmt"
	"net/smtp"

	"ecommerce-store/pkg/utils"
)

type Mailer interface {
	SendOTP(to, code string) error
}

type smtpMailer struct {
	config utils.EmailConfig
}

func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendOTP(to, code string) error {
	if m.config.Host == "" || m.config.Port == 0 {
		return fmt.Errorf("smtp not configured")
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Your OTP Code\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		"Your OTP is " + code + "\r\n"

	// No auth for local relays (MailHog etc.)
	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}
