package user

import (
	"errors"
	"net/http"

	"metagym/internal/api"
	"metagym/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	resetURL string
}

func NewHandler(service Service, resetURL string) *Handler {
	return &Handler{
		service:  service,
		resetURL: resetURL,
	}
}

// @Summary      Login
// @Description  Authenticates an administrator by email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.LoginRequest true "Credentials"
// @Success      200 {object} user.LoginResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, accessToken, refreshToken, err := h.service.Login(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.RefreshRequest true "Refresh token"
// @Success      200 {object} user.RefreshResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	accessToken, user, err := h.service.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		AccessToken: accessToken,
		User:        *user,
	})
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.User
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.service.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Request a password reset
// @Description  Always responds 200; whether the email exists is not revealed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.ForgotPasswordRequest true "Account email"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.RequestPasswordReset(ctx, req.Email, h.resetURL); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "If that email is registered, a reset link has been sent"})
}

// @Summary      Reset password with a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.ResetPasswordRequest true "Token and new password"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.ResetPassword(ctx, req.Token, req.Password); err != nil {
		if errors.Is(err, ErrResetTokenInvalid) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid or expired reset token"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password updated"})
}
