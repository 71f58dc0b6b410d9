package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/GBDev13/catalify-sub001/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendActivationMail delivers the account activation link.
func SendActivationMail(to string, name string, activationURL string) error {
	subject := "Activate your Catalify account"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to Catalify! Click the link below to activate your account:</p><p><a href=\"%s\">%s</a></p>",
		name, activationURL, activationURL,
	)
	return SendMail(to, subject, body)
}

// SendNewOrderMail notifies the company owner about a fresh order.
func SendNewOrderMail(to string, companyName string, orderCode string) error {
	subject := fmt.Sprintf("New order %s on your catalog", orderCode)
	body := fmt.Sprintf(
		"<p>Your catalog <strong>%s</strong> just received order <strong>%s</strong>.</p><p>Open your dashboard to review it.</p>",
		companyName, orderCode,
	)
	return SendMail(to, subject, body)
}
