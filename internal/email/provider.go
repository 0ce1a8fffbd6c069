package email

import "fmt"

// Message представляет структуру email сообщения
type Message struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData базовая структура для данных шаблонов
type TemplateData struct {
	UserName     string
	Subject      string
	Message      string
	ActionURL    string
	ActionText   string
	SupportEmail string
	CompanyName  string
}

// Config конфигурация email сервиса
type Config struct {
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TemplatesDir string
}

// Validate проверяет валидность конфигурации
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(msg *Message) error

	// SendConfirmation отправляет письмо со ссылкой подтверждения регистрации
	SendConfirmation(to, recipientName, confirmationLink string) error

	// Close закрывает соединение с провайдером
	Close() error
}
