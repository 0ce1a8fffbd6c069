package app

import (
	"signup_backend/internal/email"
	"signup_backend/internal/logger"
)

// LogEmailProvider используется для локальной разработки: письма не
// отправляются, ссылка подтверждения пишется в лог.
type LogEmailProvider struct{}

func (p *LogEmailProvider) Send(msg *email.Message) error {
	logger.Info("email suppressed", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (p *LogEmailProvider) SendConfirmation(to, recipientName, confirmationLink string) error {
	logger.Info("confirmation email suppressed",
		"to", to,
		"name", recipientName,
		"link", confirmationLink,
	)
	return nil
}

func (p *LogEmailProvider) Close() error { return nil }
