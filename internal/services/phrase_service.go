package services

import (
	"strings"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/utils"
)

// PhraseService stands in for an AI phrase generator by drawing from a
// fixed table.
type PhraseService struct {
	phrases []models.AIPhraseEntry
}

func NewPhraseService(phrases []models.AIPhraseEntry) *PhraseService {
	return &PhraseService{phrases: phrases}
}

// GeneratePhrase picks a random phrase matching every filter that is set.
// When nothing matches it falls back to the whole table.
func (s *PhraseService) GeneratePhrase(filter models.PhraseFilter) (models.AIPhrase, error) {
	if filter.DifficultyLevel != nil && (*filter.DifficultyLevel < 1 || *filter.DifficultyLevel > 5) {
		return models.AIPhrase{}, validationErrorf("difficultyLevel must be between 1 and 5")
	}
	if filter.MinWords != nil && *filter.MinWords < 1 {
		return models.AIPhrase{}, validationErrorf("minWords must be at least 1")
	}
	if filter.MaxWords != nil && *filter.MaxWords < 1 {
		return models.AIPhrase{}, validationErrorf("maxWords must be at least 1")
	}

	matches := make([]models.AIPhraseEntry, 0, len(s.phrases))
	for _, p := range s.phrases {
		if matchesFilter(p, filter) {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		matches = s.phrases
	}

	entry := utils.Choice(matches)
	return models.AIPhrase{
		Phrase:             entry.Phrase,
		EnglishTranslation: entry.Translation,
		Category:           entry.Category,
		DifficultyLevel:    entry.Difficulty,
		WordCount:          WordCount(entry.Phrase),
	}, nil
}

// WordCount counts whitespace-separated tokens
func WordCount(phrase string) int {
	return len(strings.Fields(phrase))
}

func matchesFilter(p models.AIPhraseEntry, filter models.PhraseFilter) bool {
	if filter.Category != nil && *filter.Category != "" && p.Category != *filter.Category {
		return false
	}
	if filter.DifficultyLevel != nil && p.Difficulty != *filter.DifficultyLevel {
		return false
	}

	words := WordCount(p.Phrase)
	if filter.MinWords != nil && words < *filter.MinWords {
		return false
	}
	if filter.MaxWords != nil && words > *filter.MaxWords {
		return false
	}
	return true
}
