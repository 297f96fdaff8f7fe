package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/report"
	"github.com/dmorgachev/ce-tracker/internal/service"
)

// ReportHandler renders CSV and PDF exports of the caller's records.
type ReportHandler struct {
	ceService      service.CEService
	profileService service.ProfileService
	logger         *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(ceService service.CEService, profileService service.ProfileService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		ceService:      ceService,
		profileService: profileService,
		logger:         logger,
	}
}

// DownloadCSV streams the caller's records as a CSV attachment.
func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	rows, err := h.buildRows(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rows); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ce_records.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// DownloadPDF streams the pro-tier PDF report. The pro gate runs in
// middleware; by the time this executes the caller is authenticated and pro.
func (h *ReportHandler) DownloadPDF(c *gin.Context) {
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

	rows, err := h.buildRows(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, *status, rows); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ce_report.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ReportHandler) buildRows(c *gin.Context) ([]report.Row, error) {
	ident, err := identityFromContext(c)
	if err != nil {
		return nil, err
	}

	records, err := h.ceService.ListRecords(c.Request.Context(), ident.ID)
	if err != nil {
		return nil, err
	}

	courses, err := h.profileService.Courses(c.Request.Context())
	if err != nil {
		return nil, err
	}

	return report.BuildRows(records, courses), nil
}
