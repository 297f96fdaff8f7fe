package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
)

func TestRespondError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"requirement missing", domain.ErrRequirementMissing, http.StatusNotFound},
		{"upstream", domain.ErrUpstream, http.StatusBadGateway},
		{"wrapped validation", fmt.Errorf("hours_earned must be positive: %w", domain.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
