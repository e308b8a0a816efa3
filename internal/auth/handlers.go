package auth

import (
	"net/http"

	"court-scheduling-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler exposes token helpers over HTTP
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// DevTokenRequest asks for a token for a synthetic principal
type DevTokenRequest struct {
	UserID string `json:"user_id" binding:"required,uuid" example:"6f1c2a8e-2b7d-4a8e-9d4c-2f8e1b3a7c55"`
	Role   string `json:"role" binding:"required,oneof=client lawyer court_scheduler" example:"lawyer"`
	Name   string `json:"name" example:"Nimal Silva"`
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	// Validate token
	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// IssueDevToken handles POST /api/auth/dev-token. Only registered outside production.
// @Summary Issue a development token
// @Description Issue a bearer token for an arbitrary principal. Not available in production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body DevTokenRequest true "Principal"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/auth/dev-token [post]
func (h *AuthHandler) IssueDevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(Principal{
		UserID: uuid.MustParse(req.UserID),
		Role:   models.UserRole(req.Role),
		Name:   req.Name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token, "tokenType": "Bearer", "expiresIn": int64(h.service.expiry.Seconds())})
}
