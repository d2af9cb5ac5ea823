package models

// Sentence is a practice sentence from the seed table
type Sentence struct {
	ID                 int     `toml:"id" json:"id"`
	KreyolText         string  `toml:"kreyol_text" json:"kreyolText"`
	EnglishTranslation string  `toml:"english_translation" json:"englishTranslation"`
	Category           *string `toml:"category" json:"category"`
	DifficultyLevel    int     `toml:"difficulty_level" json:"difficultyLevel"`
	AudioURL           *string `toml:"audio_url" json:"audioUrl"`
}

// HasCategory reports whether the sentence belongs to category (case-sensitive)
func (s Sentence) HasCategory(category string) bool {
	return s.Category != nil && *s.Category == category
}
