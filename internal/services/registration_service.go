package services

import (
	"fmt"
	"time"

	"signup_backend/internal/auth"
	"signup_backend/internal/clock"
	"signup_backend/internal/email"
	"signup_backend/internal/logger"
	"signup_backend/internal/models"
	"signup_backend/internal/repositories"
	"signup_backend/internal/services/dto"
	"signup_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type RegistrationService interface {
	Register(req *dto.RegisterRequest) (string, error)
	Confirm(token string) (*dto.ConfirmResult, error)
}

type RegistrationServiceImpl struct {
	accountRepo repositories.AccountRepository
	tokenRepo   repositories.TokenRepository
	hasher      auth.PasswordHasher
	notifier    email.Provider
	clock       clock.Clock
	confirmURL  string
	tokenTTL    time.Duration
}

func NewRegistrationService(
	accountRepo repositories.AccountRepository,
	tokenRepo repositories.TokenRepository,
	hasher auth.PasswordHasher,
	notifier email.Provider,
	clk clock.Clock,
	confirmURL string,
	tokenTTL time.Duration,
) RegistrationService {
	return &RegistrationServiceImpl{
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		hasher:      hasher,
		notifier:    notifier,
		clock:       clk,
		confirmURL:  confirmURL,
		tokenTTL:    tokenTTL,
	}
}

// Register - регистрация нового аккаунта.
// Аккаунт создается выключенным, токен подтверждения уходит на email.
// Возвращает сгенерированный токен подтверждения.
func (s *RegistrationServiceImpl) Register(req *dto.RegisterRequest) (string, error) {
	// Валидация пароля
	if err := auth.ValidatePassword(req.Password); err != nil {
		return "", apperrors.ErrWeakPassword
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	account := &models.Account{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
		Role:         models.AccountRoleStandard,
		Enabled:      false,
	}

	// Уникальность email обеспечивает constraint в хранилище:
	// из двух конкурентных регистраций одна получит ErrAccountAlreadyExists.
	if err := s.accountRepo.Create(account); err != nil {
		if apperrors.Is(err, repositories.ErrAccountAlreadyExists) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", apperrors.StorageError(err)
	}

	token, err := s.issueToken(account.ID)
	if err != nil {
		return "", err
	}

	// Письмо уходит после того, как аккаунт и токен сохранены.
	// Сбой доставки не откатывает запись: пользователь сможет получить
	// новое письмо через переиздание токена.
	if err := s.sendConfirmation(account.Email, account.FirstName, token.Token); err != nil {
		logger.WithError(err).Warn("confirmation email not delivered", "email", account.Email)
		return "", apperrors.DeliveryError(err)
	}

	logger.Info("account registered", "account_id", account.ID)
	return token.Token, nil
}

// Confirm - подтверждение аккаунта по токену.
// Истекший токен не активирует аккаунт: вместо этого выпускается и
// отправляется новый. Повторное подтверждение еще действующего токена
// не является ошибкой.
func (s *RegistrationServiceImpl) Confirm(tokenString string) (*dto.ConfirmResult, error) {
	token, err := s.tokenRepo.FindByToken(tokenString)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	account, err := s.accountRepo.FindByID(token.AccountID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAccountNotFound) {
			// Токен ссылается на несуществующий аккаунт - порча данных.
			logger.Error("confirmation token references missing account",
				"token_id", token.ID, "account_id", token.AccountID)
			return nil, apperrors.AccountMissingError(err)
		}
		return nil, apperrors.StorageError(err)
	}

	now := s.clock.Now()

	if token.Expired(now) {
		// Переиздание: новая строка токена, прежняя остается как есть.
		fresh, err := s.issueToken(account.ID)
		if err != nil {
			return nil, err
		}

		if err := s.sendConfirmation(account.Email, account.FirstName, fresh.Token); err != nil {
			logger.WithError(err).Warn("reissued confirmation email not delivered", "email", account.Email)
			return nil, apperrors.DeliveryError(err)
		}

		logger.Info("confirmation token reissued", "account_id", account.ID)
		return &dto.ConfirmResult{
			Status:  dto.ConfirmStatusExpired,
			Message: "Token expired. A new confirmation link has been sent to your email.",
		}, nil
	}

	// Сначала активация аккаунта, затем отметка токена: токен никогда
	// не будет помечен использованным раньше, чем аккаунт включен.
	account.Enabled = true
	if err := s.accountRepo.Update(account); err != nil {
		return nil, apperrors.StorageError(err)
	}

	validatedAt := now
	token.ValidatedAt = &validatedAt
	if err := s.tokenRepo.Update(token); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.Info("account confirmed", "account_id", account.ID)
	return &dto.ConfirmResult{
		Status:  dto.ConfirmStatusConfirmed,
		Message: "Your account has been successfully confirmed.",
	}, nil
}

// issueToken создает и сохраняет новый токен подтверждения для аккаунта.
func (s *RegistrationServiceImpl) issueToken(accountID string) (*models.ConfirmationToken, error) {
	now := s.clock.Now()

	token := &models.ConfirmationToken{
		Token:     uuid.NewString(),
		AccountID: accountID,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	token.CreatedAt = now

	if err := s.tokenRepo.Create(token); err != nil {
		return nil, apperrors.StorageError(err)
	}

	return token, nil
}

func (s *RegistrationServiceImpl) sendConfirmation(to, name, token string) error {
	link := fmt.Sprintf(s.confirmURL, token)
	return s.notifier.SendConfirmation(to, name, link)
}
