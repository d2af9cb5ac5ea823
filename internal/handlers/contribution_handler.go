package handlers

import (
	"net/http"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ContributionHandler struct {
	contributionService *services.ContributionService
}

func NewContributionHandler(contributionService *services.ContributionService) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

type contributionURI struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

type listContributionsQuery struct {
	Page              int  `form:"page,default=1" binding:"min=1"`
	PageSize          int  `form:"pageSize,default=20" binding:"min=1,max=100"`
	IncludeUnapproved bool `form:"includeUnapproved"`
}

// Multipart field names, documented name first, then the legacy front-end name
var (
	kreyolTextFields = []string{"kreyolText", "KreyòlText", "KreyolText"}
	audioFileFields  = []string{"audioFile", "AudioFile"}
	emailFields      = []string{"email", "Email"}
	genderFields     = []string{"gender", "Gender"}
	regionFields     = []string{"region", "Region"}
)

// SubmitContribution accepts a multipart audio contribution
// POST /api/contributions
func (h *ContributionHandler) SubmitContribution(c *gin.Context) {
	input := services.SubmitContributionInput{
		KreyolText: postForm(c, kreyolTextFields),
		Email:      postForm(c, emailFields),
		Gender:     postForm(c, genderFields),
		Region:     postForm(c, regionFields),
	}

	for _, field := range audioFileFields {
		if file, err := c.FormFile(field); err == nil {
			input.AudioFilename = file.Filename
			break
		}
	}

	contribution, err := h.contributionService.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contribution)
}

// GetContributions returns a page of contributions
// GET /api/contributions
func (h *ContributionHandler) GetContributions(c *gin.Context) {
	var query listContributionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.contributionService.List(c.Request.Context(), query.Page, query.PageSize, query.IncludeUnapproved)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetContribution retrieves a contribution by ID
// GET /api/contributions/:id
func (h *ContributionHandler) GetContribution(c *gin.Context) {
	var uri contributionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	contribution, err := h.contributionService.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contribution)
}

// ModerateContribution approves or rejects a contribution
// PATCH /api/contributions/:id/approval
func (h *ContributionHandler) ModerateContribution(c *gin.Context) {
	var uri contributionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	var req models.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	contribution, err := h.contributionService.Moderate(c.Request.Context(), uri.ID, *req.Approved, req.RejectionReason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contribution)
}

// postForm returns the first non-empty value among the given form fields
func postForm(c *gin.Context, fields []string) string {
	for _, field := range fields {
		if value := c.PostForm(field); value != "" {
			return value
		}
	}
	return ""
}
