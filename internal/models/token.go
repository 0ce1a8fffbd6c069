package models

import "time"

// ConfirmationToken - одноразовый токен подтверждения email.
// Старые токены не удаляются: при переиздании создается новая строка,
// прежние остаются для аудита.
type ConfirmationToken struct {
	BaseModel
	Token       string    `gorm:"not null;uniqueIndex"`
	AccountID   string    `gorm:"not null;index"`
	ExpiresAt   time.Time `gorm:"not null"`
	ValidatedAt *time.Time
}

// Expired сообщает, истек ли токен на момент now.
func (t *ConfirmationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Validated сообщает, был ли токен уже использован для подтверждения.
func (t *ConfirmationToken) Validated() bool {
	return t.ValidatedAt != nil
}
