package models

// AIPhraseEntry is a row of the canned phrase table
type AIPhraseEntry struct {
	Phrase      string `toml:"phrase" json:"phrase"`
	Translation string `toml:"translation" json:"translation"`
	Category    string `toml:"category" json:"category"`
	Difficulty  int    `toml:"difficulty" json:"difficulty"`
}

// AIPhrase is the generated phrase returned to clients
type AIPhrase struct {
	Phrase             string `json:"phrase"`
	EnglishTranslation string `json:"englishTranslation"`
	Category           string `json:"category"`
	DifficultyLevel    int    `json:"difficultyLevel"`
	WordCount          int    `json:"wordCount"`
}

// PhraseFilter narrows the phrase table. Nil fields are not applied.
type PhraseFilter struct {
	Category        *string `form:"category"`
	DifficultyLevel *int    `form:"difficultyLevel" binding:"omitempty,min=1,max=5"`
	MinWords        *int    `form:"minWords" binding:"omitempty,min=1"`
	MaxWords        *int    `form:"maxWords" binding:"omitempty,min=1"`
}
