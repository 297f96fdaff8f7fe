package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/dto"
)

// respondError maps the domain error taxonomy onto HTTP responses.
// Validation and authorization failures carry their message to the caller;
// persistence and upstream failures are logged and surfaced generically.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "Unauthorized",
			Message: "Invalid or expired session",
		})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "Forbidden",
			Message: "Upgrade to Pro to use this feature",
		})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrRequirementMissing):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not configured",
			Message: "No CE requirement has been configured",
		})
	case errors.Is(err, domain.ErrUpstream):
		logger.Error("upstream provider failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "Bad gateway",
			Message: "An external service is unavailable",
		})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
		})
	}
}
