package dto

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// ConfirmStatus - исход подтверждения токена
type ConfirmStatus string

const (
	// ConfirmStatusConfirmed - аккаунт активирован.
	ConfirmStatusConfirmed ConfirmStatus = "confirmed"
	// ConfirmStatusExpired - токен истек, выпущен и отправлен новый.
	ConfirmStatusExpired ConfirmStatus = "expired"
)

// ConfirmResult - результат вызова Confirm
type ConfirmResult struct {
	Status  ConfirmStatus `json:"status"`
	Message string        `json:"message"`
}
