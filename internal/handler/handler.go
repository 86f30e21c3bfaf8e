package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler serves the pages that belong to no entity: landing page,
// protected dashboard and health probes.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Index(c *gin.Context) {
	Render(c, http.StatusOK, "index.html", nil)
}

func (h *Handler) Dashboard(c *gin.Context) {
	Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Email": c.GetString("sessionEmail"),
	})
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"time":   time.Now(),
	})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now(),
	})
}
