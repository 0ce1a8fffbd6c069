package handlers

import (
	"net/http"

	"signup_backend/internal/services"
	"signup_backend/internal/services/dto"
	"signup_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewAuthHandler(base *BaseHandler, registrationService services.RegistrationService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

// RegisterRoutes регистрирует маршруты регистрации и подтверждения
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.GET("/confirm", h.Confirm)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	token, err := h.registrationService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email to confirm your account.",
		"token":   token,
	})
}

func (h *AuthHandler) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: token"))
		return
	}

	result, err := h.registrationService.Confirm(token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  result.Status,
		"message": result.Message,
	})
}
