package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/dto"
	"github.com/dmorgachev/ce-tracker/internal/service"
)

// ProfileHandler serves reference data and profile settings
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// States lists jurisdiction codes.
func (h *ProfileHandler) States(c *gin.Context) {
	states, err := h.profileService.States(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, states)
}

// Courses lists course reference data.
func (h *ProfileHandler) Courses(c *gin.Context) {
	courses, err := h.profileService.Courses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// UpdateSettings sets the caller's jurisdiction state.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	ident, err := identityFromContext(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	if err := h.profileService.UpdateState(c.Request.Context(), ident.ID, req.State); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Message: "Settings updated",
	})
}
