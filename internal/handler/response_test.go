package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"labelscan/internal/domain"
	"labelscan/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unsupported image type", domain.ErrUnsupportedImageType, http.StatusBadRequest, "UNSUPPORTED_IMAGE_TYPE"},
		{"image too large", domain.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE"},
		{"image analysis off", domain.ErrImageAnalysisOff, http.StatusServiceUnavailable, "IMAGE_ANALYSIS_OFF"},
		{"ocr failed", domain.ErrOCRFailed, http.StatusBadGateway, "OCR_FAILED"},
		{"upload failed", domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("reading label image: %w", domain.ErrOCRFailed)
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "OCR_FAILED", code)
}
