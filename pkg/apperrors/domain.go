package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для ошибок домена регистрации.
*/

// ErrEmailAlreadyExists - аккаунт с таким email уже зарегистрирован (409).
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"registration",
	"An account with this email already exists",
	http.StatusConflict,
)

// ErrTokenNotFound - неизвестный токен подтверждения (404).
var ErrTokenNotFound = New(
	CodeNotFound,
	"registration",
	"Confirmation token not found",
	http.StatusNotFound,
)

// ErrWeakPassword - пароль не проходит проверку сложности (400).
var ErrWeakPassword = New(
	CodeValidationFailed,
	"registration",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// AccountMissingError - токен ссылается на несуществующий аккаунт.
// Это нарушение целостности данных: наружу уходит generic 500,
// детали остаются в логах.
func AccountMissingError(err error) *AppError {
	return Wrap(err, CodeInternalError, "registration", "Internal server error", http.StatusInternalServerError)
}

// StorageError - фабрика для ошибок слоя хранения (500).
func StorageError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "storage", "Storage operation failed", http.StatusInternalServerError)
}

// DeliveryError - не удалось отправить письмо подтверждения (502).
// Аккаунт и токен к этому моменту уже сохранены и не откатываются.
func DeliveryError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to send confirmation email", http.StatusBadGateway)
}
