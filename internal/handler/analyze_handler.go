package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"labelscan/internal/service"
)

// AnalyzeHandler handles ingredient analysis endpoints.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

type analyzeTextRequest struct {
	IngredientsText string   `json:"ingredients_text" binding:"required"`
	Allergies       []string `json:"allergies"`
}

// AnalyzeText handles POST /api/v1/analyze/text
func (h *AnalyzeHandler) AnalyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with an ingredients_text field")
		return
	}

	analysis, err := h.analysisService.AnalyzeText(c.Request.Context(), &service.AnalyzeTextInput{
		Text:      req.IngredientsText,
		Allergies: req.Allergies,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, analysis)
}

// AnalyzeImage handles POST /api/v1/analyze/image
func (h *AnalyzeHandler) AnalyzeImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_IMAGE", "image field is required")
		return
	}
	defer func() { _ = file.Close() }()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_IMAGE", "could not read uploaded image")
		return
	}

	var allergies []string
	if raw := c.PostForm("allergies"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			allergies = append(allergies, strings.TrimSpace(a))
		}
	}

	contentType := header.Header.Get("Content-Type")
	analysis, err := h.analysisService.AnalyzeImage(c.Request.Context(), &service.AnalyzeImageInput{
		ImageBytes:  imageBytes,
		ContentType: contentType,
		Filename:    header.Filename,
		Allergies:   allergies,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, analysis)
}
