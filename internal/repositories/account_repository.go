package repositories

import (
	"errors"

	"signup_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
)

type AccountRepository interface {
	FindByID(id string) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Create вставляет аккаунт атомарно: уникальность email обеспечивает
// uniqueIndex в БД, а не проверка в коде. Два конкурентных Create с одним
// email дадут ровно одну успешную вставку, вторая вернет
// ErrAccountAlreadyExists.
func (r *AccountRepositoryImpl) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountRepositoryImpl) Update(account *models.Account) error {
	return r.db.Save(account).Error
}
