// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/foodhub-storefront/internal/domain/account"
	"github.com/your-org/foodhub-storefront/internal/pkg/auth"
)

// SignupRequest is the registration form
type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest carries the one-time code
type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthHandler handles signup, login and code verification
type AuthHandler struct {
	authenticator *account.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authenticator *account.Authenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	challenge, err := h.authenticator.Signup(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Verification code sent",
		"data":    challenge,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	challenge, err := h.authenticator.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Verification code sent",
		"data":    challenge,
	})
}

// Verify handles POST /auth/verify and issues an access token on success
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	acct, err := h.authenticator.Verify(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateAccessToken(acct.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expiresAt,
			"account":      acct.Profile(),
		},
	})
}

// Cancel handles POST /auth/cancel
func (h *AuthHandler) Cancel(c *gin.Context) {
	h.authenticator.Cancel(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "Verification cancelled",
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authenticator.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
