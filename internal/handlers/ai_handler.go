package handlers

import (
	"net/http"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	phraseService *services.PhraseService
}

func NewAIHandler(phraseService *services.PhraseService) *AIHandler {
	return &AIHandler{
		phraseService: phraseService,
	}
}

// GetRandomPhrase returns a generated phrase. /api/ai/gemini-phrase is an alias.
// GET /api/ai/random-phrase
func (h *AIHandler) GetRandomPhrase(c *gin.Context) {
	var filter models.PhraseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	phrase, err := h.phraseService.GeneratePhrase(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phrase)
}
