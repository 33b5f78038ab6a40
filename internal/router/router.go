package router

import (
	"github.com/gin-gonic/gin"

	"labelscan/internal/config"
	"labelscan/internal/handler"
	"labelscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analyzeH *handler.AnalyzeHandler,
	analysisH *handler.AnalysisHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	maxBody := int64(20) << 20
	if cfg.S3.MaxImageSizeMB > 0 {
		// Leave headroom for multipart framing around the image itself.
		maxBody = (cfg.S3.MaxImageSizeMB + 1) << 20
	}

	analyze := v1.Group("/analyze")
	analyze.POST("/text", analyzeH.AnalyzeText)
	analyze.POST("/image", middleware.BodyLimit(maxBody), analyzeH.AnalyzeImage)

	analyses := v1.Group("/analyses")
	analyses.GET("", analysisH.List)
	analyses.GET("/export", analysisH.Export)
	analyses.GET("/:id", analysisH.GetByID)
	analyses.DELETE("/:id", analysisH.Delete)

	return r
}
