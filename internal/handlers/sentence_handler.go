package handlers

import (
	"net/http"

	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
)

type SentenceHandler struct {
	sentenceService *services.SentenceService
}

func NewSentenceHandler(sentenceService *services.SentenceService) *SentenceHandler {
	return &SentenceHandler{
		sentenceService: sentenceService,
	}
}

type sentenceCountQuery struct {
	Count int `form:"count,default=1" binding:"min=1,max=50"`
}

type randomSentencesQuery struct {
	sentenceCountQuery
	ExcludeIDs string `form:"excludeIds"`
}

type categoryURI struct {
	Category string `uri:"category" binding:"required"`
}

type difficultyURI struct {
	Level int `uri:"level" binding:"required,min=1,max=5"`
}

// GetRandomSentences returns random sentences, skipping excluded ids
// GET /api/sentences/random
func (h *SentenceHandler) GetRandomSentences(c *gin.Context) {
	var query randomSentencesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	exclude, err := services.ParseExcludeIDs(query.ExcludeIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	sentences, err := h.sentenceService.RandomSentences(query.Count, exclude)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sentences)
}

// GetSentencesByCategory returns random sentences from one category.
// Also served at /api/sentences/category-simple/:category.
// GET /api/sentences/category/:category
func (h *SentenceHandler) GetSentencesByCategory(c *gin.Context) {
	var uri categoryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	var query sentenceCountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	sentences, err := h.sentenceService.SentencesByCategory(uri.Category, query.Count)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sentences)
}

// GetSentencesByDifficulty returns random sentences of one difficulty level
// GET /api/sentences/difficulty/:level
func (h *SentenceHandler) GetSentencesByDifficulty(c *gin.Context) {
	var uri difficultyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	var query sentenceCountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	sentences, err := h.sentenceService.SentencesByDifficulty(uri.Level, query.Count)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sentences)
}
