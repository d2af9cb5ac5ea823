package handlers

import (
	"net/http"

	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ProxyHandler struct {
	proxyService *services.AudioProxyService
}

func NewProxyHandler(proxyService *services.AudioProxyService) *ProxyHandler {
	return &ProxyHandler{
		proxyService: proxyService,
	}
}

// ProxyAudio describes the proxied audio URL without fetching it
// GET /api/proxy-audio
func (h *ProxyHandler) ProxyAudio(c *gin.Context) {
	resp, err := h.proxyService.Describe(c.Query("url"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
