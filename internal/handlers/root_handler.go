package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by GET /
const APIVersion = "1.0.0"

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// GetInfo returns basic API information
// GET /
func (h *RootHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Palefò Mock API",
		"version": APIVersion,
		"documentation": gin.H{
			"swagger": "/docs",
			"redoc":   "/redoc",
		},
		"endpoints": gin.H{
			"sentences":     "/api/sentences/*",
			"contributions": "/api/contributions",
			"statistics":    "/api/statistics",
			"contributors":  "/api/contributors/top",
			"ai":            "/api/ai/*",
			"proxy":         "/api/proxy-audio",
		},
	})
}

// Health is a liveness probe
// GET /health
func (h *RootHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
