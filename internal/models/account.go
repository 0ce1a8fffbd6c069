package models

type AccountRole string

const (
	// AccountRoleStandard назначается каждому новому аккаунту при регистрации.
	AccountRoleStandard AccountRole = "standard_user"
)

// Account - учетная запись пользователя. Создается выключенной (Enabled=false)
// и активируется ровно один раз после подтверждения email.
type Account struct {
	BaseModel
	Email        string      `gorm:"uniqueIndex;not null"`
	FirstName    string      `gorm:"not null"`
	LastName     string      `gorm:"not null"`
	PasswordHash string      `gorm:"not null"`
	Role         AccountRole `gorm:"type:varchar(30);not null"`
	Enabled      bool        `gorm:"not null;default:false"`

	// Relations
	ConfirmationTokens []ConfirmationToken `gorm:"foreignKey:AccountID"`
}
