package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"labelscan/internal/refdata"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db   *sqlx.DB
	refs *refdata.Database
}

// NewHealthHandler creates a new HealthHandler. The sqlx handle may be nil
// when the server runs without persistence.
func NewHealthHandler(db *sqlx.DB, refs *refdata.Database) *HealthHandler {
	return &HealthHandler{db: db, refs: refs}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.refs == nil || h.refs.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "reference data not loaded"})
		return
	}
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ingredients": h.refs.Len()})
}
