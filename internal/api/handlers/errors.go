package handlers

import (
	"context"
	"errors"
	"net/http"

	"court-scheduling-backend/internal/auth"
	apperrors "court-scheduling-backend/internal/errors"
	"court-scheduling-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP statuses. Persistence failures
// and timeouts are reported as retryable without their internals.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsInvalidState(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case apperrors.IsPersistence(err), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logger.WithContext(c).Errorf("request failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporarily unavailable, please try again"})
	default:
		logger.WithContext(c).Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// principal returns the authenticated principal or nil. Services reject nil.
func principal(c *gin.Context) *auth.Principal {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		return nil
	}
	return p
}
