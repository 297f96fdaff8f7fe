package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
)

type stubProfileService struct {
	states  []domain.State
	courses []domain.Course
	err     error
}

func (s *stubProfileService) States(_ context.Context) ([]domain.State, error) {
	return s.states, s.err
}

func (s *stubProfileService) Courses(_ context.Context) ([]domain.Course, error) {
	return s.courses, s.err
}

func (s *stubProfileService) UpdateState(_ context.Context, _, _ string) error {
	return s.err
}

func reportRouter(ce *stubCEService, profile *stubProfileService, ident *domain.Identity) *gin.Engine {
	handler := NewReportHandler(ce, profile, zap.NewNop())
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(identityContextKey, ident)
	})
	router.GET("/csv", handler.DownloadCSV)
	router.GET("/pdf", handler.DownloadPDF)
	return router
}

func TestReportHandler_DownloadCSV(t *testing.T) {
	ce := &stubCEService{
		records: []domain.CERecord{
			{
				ID:            "r1",
				UserID:        "u1",
				CourseID:      "c1",
				DateCompleted: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				HoursEarned:   4,
			},
		},
	}
	profile := &stubProfileService{
		courses: []domain.Course{{ID: "c1", Title: "Ethics Refresher"}},
	}
	router := reportRouter(ce, profile, &domain.Identity{ID: "u1", IsPro: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=ce_records.csv", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Ethics Refresher")
	assert.Contains(t, rec.Body.String(), "2024-03-15")
}

func TestReportHandler_DownloadPDF(t *testing.T) {
	ce := &stubCEService{
		status: &domain.CEStatus{
			RequiredHours:   20,
			HoursCompleted:  4,
			HoursRemaining:  16,
			NextRenewalDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		records: []domain.CERecord{
			{
				ID:            "r1",
				UserID:        "u1",
				CourseID:      "c1",
				DateCompleted: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				HoursEarned:   4,
			},
		},
	}
	profile := &stubProfileService{
		courses: []domain.Course{{ID: "c1", Title: "Ethics Refresher"}},
	}
	router := reportRouter(ce, profile, &domain.Identity{ID: "u1", IsPro: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=ce_report.pdf", rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"), "response should be a PDF document")
}
