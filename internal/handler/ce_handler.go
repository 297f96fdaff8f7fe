package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/dto"
	"github.com/dmorgachev/ce-tracker/internal/service"
)

const dateLayout = "2006-01-02"

// CEHandler handles CE record and status requests
type CEHandler struct {
	ceService service.CEService
	logger    *zap.Logger
}

// NewCEHandler creates a new CE handler
func NewCEHandler(ceService service.CEService, logger *zap.Logger) *CEHandler {
	return &CEHandler{
		ceService: ceService,
		logger:    logger,
	}
}

// ListRecords returns the caller's CE records.
func (h *CEHandler) ListRecords(c *gin.Context) {
	ident, err := identityFromContext(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	records, err := h.ceService.ListRecords(c.Request.Context(), ident.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, recordResponse(r))
	}

	c.JSON(http.StatusOK, out)
}

// CreateRecord ingests a single CE completion record, owned by the caller.
func (h *CEHandler) CreateRecord(c *gin.Context) {
	ident, err := identityFromContext(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	dateCompleted, err := time.Parse(dateLayout, req.DateCompleted)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("date_completed must be YYYY-MM-DD: %w", domain.ErrValidation))
		return
	}

	record, err := h.ceService.CreateRecord(c.Request.Context(), ident.ID, service.CreateRecordInput{
		CourseID:      req.CourseID,
		DateCompleted: dateCompleted,
		HoursEarned:   req.HoursEarned,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, recordResponse(*record))
}

// Status returns the caller's renewal progress.
func (h *CEHandler) Status(c *gin.Context) {
	ident, err := identityFromContext(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status, err := h.ceService.Status(c.Request.Context(), ident.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		RequiredHours:   status.RequiredHours,
		HoursCompleted:  status.HoursCompleted,
		HoursRemaining:  status.HoursRemaining,
		NextRenewalDate: status.NextRenewalDate.Format(dateLayout),
	})
}

func recordResponse(r domain.CERecord) dto.RecordResponse {
	return dto.RecordResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		CourseID:      r.CourseID,
		DateCompleted: r.DateCompleted.Format(dateLayout),
		HoursEarned:   r.HoursEarned,
		Notes:         r.Notes,
	}
}
