package handlers

import (
	"fmt"
	"net/http"

	"workzo_backend/internal/config"
	"workzo_backend/internal/services"
	"workzo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify-email/:token", h.VerifyEmail)
		auth.POST("/resend-verification", h.ResendVerification)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Register(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Registration successful. Please verify your email.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyEmail lands from the email link, so the outcome is a redirect to the
// frontend rather than a JSON body.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")
	frontendURL := config.GetConfig().App.FrontendURL

	if err := h.authService.VerifyEmail(h.GetDB(c), token); err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify-email?status=failed", frontendURL))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/verify-email?status=success", frontendURL))
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResendVerification(h.GetDB(c), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification email resent successfully"})
}
