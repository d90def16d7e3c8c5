package service

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier delivers plain-text notification emails through a relay host.
// No authentication is used; the relay is expected to sit inside the network.
type SMTPNotifier struct {
	addr string
	from string
}

// NewSMTPNotifier creates a notifier against host:port
func NewSMTPNotifier(host, port, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr: host + ":" + port,
		from: from,
	}
}

// Notify sends one message to all recipients
func (n *SMTPNotifier) Notify(to []string, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.from, strings.Join(to, ", "), subject, body)
	if err := smtp.SendMail(n.addr, nil, n.from, to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
