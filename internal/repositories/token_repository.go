package repositories

import (
	"errors"

	"signup_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("confirmation token not found")

type TokenRepository interface {
	FindByToken(token string) (*models.ConfirmationToken, error)
	Create(token *models.ConfirmationToken) error
	Update(token *models.ConfirmationToken) error
}

type TokenRepositoryImpl struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

func (r *TokenRepositoryImpl) FindByToken(token string) (*models.ConfirmationToken, error) {
	var row models.ConfirmationToken
	err := r.db.First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *TokenRepositoryImpl) Create(token *models.ConfirmationToken) error {
	return r.db.Create(token).Error
}

func (r *TokenRepositoryImpl) Update(token *models.ConfirmationToken) error {
	return r.db.Save(token).Error
}
