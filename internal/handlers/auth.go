package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/dto"
	apierrors "github.com/graphico/brief-api/internal/errors"
	"github.com/graphico/brief-api/internal/middleware"
	"github.com/graphico/brief-api/internal/services"
)

// AuthHandler coordinates login and session HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login signs a user in, registering the email on first sight. There is no
// credential check: the email alone claims the identity, exactly as the
// original client behaved.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"required,email"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to log in")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserEmail, user.Email)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout removes the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
