package services

import (
	"strconv"
	"strings"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/utils"
)

const (
	MinSentenceCount = 1
	MaxSentenceCount = 50
)

type SentenceService struct {
	sentences []models.Sentence
}

func NewSentenceService(sentences []models.Sentence) *SentenceService {
	return &SentenceService{sentences: sentences}
}

// ParseExcludeIDs parses a comma-separated id list. Blank input excludes nothing.
func ParseExcludeIDs(raw string) (map[int]bool, error) {
	exclude := make(map[int]bool)
	if raw == "" {
		return exclude, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, validationErrorf("Invalid excludeIds format")
		}
		exclude[id] = true
	}

	return exclude, nil
}

// RandomSentences samples count sentences whose ids are not excluded
func (s *SentenceService) RandomSentences(count int, exclude map[int]bool) ([]models.Sentence, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	return s.sample(count, func(sentence models.Sentence) bool {
		return !exclude[sentence.ID]
	}), nil
}

// SentencesByCategory samples count sentences with an exact category match
func (s *SentenceService) SentencesByCategory(category string, count int) ([]models.Sentence, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	return s.sample(count, func(sentence models.Sentence) bool {
		return sentence.HasCategory(category)
	}), nil
}

// SentencesByDifficulty samples count sentences of the given difficulty level
func (s *SentenceService) SentencesByDifficulty(level, count int) ([]models.Sentence, error) {
	if level < 1 || level > 5 {
		return nil, validationErrorf("difficulty level must be between 1 and 5")
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}

	return s.sample(count, func(sentence models.Sentence) bool {
		return sentence.DifficultyLevel == level
	}), nil
}

func (s *SentenceService) sample(count int, keep func(models.Sentence) bool) []models.Sentence {
	matches := make([]models.Sentence, 0, len(s.sentences))
	for _, sentence := range s.sentences {
		if keep(sentence) {
			matches = append(matches, sentence)
		}
	}

	return utils.Sample(matches, count)
}

func validateCount(count int) error {
	if count < MinSentenceCount || count > MaxSentenceCount {
		return validationErrorf("count must be between %d and %d", MinSentenceCount, MaxSentenceCount)
	}
	return nil
}
