package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализация Provider поверх gomail
type SMTPProvider struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP отправитель
func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPProvider{
		config:    config,
		templates: tm,
		dialer: gomail.NewDialer(
			config.SMTPHost,
			config.SMTPPort,
			config.Username,
			config.Password,
		),
	}, nil
}

// Send отправляет email
func (s *SMTPProvider) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	return s.dialer.DialAndSend(m)
}

// SendConfirmation отправляет письмо подтверждения регистрации
func (s *SMTPProvider) SendConfirmation(to, recipientName, confirmationLink string) error {
	data := TemplateData{
		UserName:     recipientName,
		Subject:      "Confirm your email address",
		ActionURL:    confirmationLink,
		ActionText:   "Confirm my account",
		SupportEmail: s.config.FromEmail,
		CompanyName:  s.config.FromName,
	}

	htmlBody, err := s.templates.Render("confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	msg := &Message{
		To:      []string{to},
		Subject: data.Subject,
		Body: fmt.Sprintf(
			"Hello %s,\n\nPlease confirm your email address by opening the link below:\n%s\n\nThe link is valid for a limited time.",
			recipientName, confirmationLink,
		),
		HTMLBody: htmlBody,
	}

	return s.Send(msg)
}

// Close закрывает провайдер. Dialer открывает соединение на каждую
// отправку, поэтому здесь нечего освобождать.
func (s *SMTPProvider) Close() error {
	return nil
}
