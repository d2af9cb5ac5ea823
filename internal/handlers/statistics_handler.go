package handlers

import (
	"net/http"

	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService  *services.StatisticsService
	contributorService *services.ContributorService
}

func NewStatisticsHandler(
	statisticsService *services.StatisticsService,
	contributorService *services.ContributorService,
) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService:  statisticsService,
		contributorService: contributorService,
	}
}

type topContributorsQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// GetStatistics returns platform statistics
// GET /api/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.statisticsService.GetStatistics())
}

// GetTopContributors returns the leaderboard
// GET /api/contributors/top
func (h *StatisticsHandler) GetTopContributors(c *gin.Context) {
	var query topContributorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	contributors, err := h.contributorService.TopContributors(query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributors)
}
