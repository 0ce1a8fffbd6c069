package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"signup_backend/internal/handlers"
	"signup_backend/internal/services/dto"
	"signup_backend/internal/validator"
	"signup_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegistrationService struct {
	registerToken string
	registerErr   error
	confirmResult *dto.ConfirmResult
	confirmErr    error

	gotRegister *dto.RegisterRequest
	gotToken    string
}

func (s *stubRegistrationService) Register(req *dto.RegisterRequest) (string, error) {
	s.gotRegister = req
	return s.registerToken, s.registerErr
}

func (s *stubRegistrationService) Confirm(token string) (*dto.ConfirmResult, error) {
	s.gotToken = token
	return s.confirmResult, s.confirmErr
}

func newTestRouter(svc *stubRegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	base := handlers.NewBaseHandler(validator.New())
	authHandler := handlers.NewAuthHandler(base, svc)

	api := router.Group("/api/v1")
	authHandler.RegisterRoutes(api)

	return router
}

func sendJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint_Success(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{registerToken: "generated-token"}
	router := newTestRouter(svc)

	rec := sendJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":      "a@x.com",
		"first_name": "Ann",
		"last_name":  "Lee",
		"password":   "super_password123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "generated-token")
	require.NotNil(t, svc.gotRegister)
	assert.Equal(t, "a@x.com", svc.gotRegister.Email)
}

func TestRegisterEndpoint_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{}
	router := newTestRouter(svc)

	// email отсутствует
	rec := sendJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"first_name": "Ann",
		"last_name":  "Lee",
		"password":   "super_password123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotRegister, "сервис не должен вызываться при невалидном теле")
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{registerErr: apperrors.ErrEmailAlreadyExists}
	router := newTestRouter(svc)

	rec := sendJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":      "dup@x.com",
		"first_name": "Ann",
		"last_name":  "Lee",
		"password":   "super_password123",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_EXISTS")
}

func TestConfirmEndpoint_Success(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{
		confirmResult: &dto.ConfirmResult{
			Status:  dto.ConfirmStatusConfirmed,
			Message: "Your account has been successfully confirmed.",
		},
	}
	router := newTestRouter(svc)

	rec := sendJSON(t, router, http.MethodGet, "/api/v1/auth/confirm?token=abc", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirmed")
	assert.Equal(t, "abc", svc.gotToken)
}

func TestConfirmEndpoint_MissingToken(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{}
	router := newTestRouter(svc)

	rec := sendJSON(t, router, http.MethodGet, "/api/v1/auth/confirm", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.gotToken)
}

func TestConfirmEndpoint_UnknownToken(t *testing.T) {
	t.Parallel()

	svc := &stubRegistrationService{confirmErr: apperrors.ErrTokenNotFound}
	router := newTestRouter(svc)

	rec := sendJSON(t, router, http.MethodGet, "/api/v1/auth/confirm?token=garbage", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
