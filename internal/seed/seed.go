package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/utils"
)

//go:embed seed.toml
var defaultSeed []byte

// SeedContributionTime is the creation time stamped on seed contributions
var SeedContributionTime = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

const seedRejectionReason = "Audio quality issue"

var seedRegions = []string{"Port-au-Prince", "Cap-Haïtien", "Les Cayes", "Gonaïves"}

var seedGenders = []string{models.GenderMale, models.GenderFemale, models.GenderOther}

// Data holds the immutable seed tables
type Data struct {
	Sentences    []models.Sentence      `toml:"sentences"`
	Contributors []models.Contributor   `toml:"contributors"`
	AIPhrases    []models.AIPhraseEntry `toml:"ai_phrases"`
}

// Default decodes the embedded seed tables
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads seed tables from path, or the embedded tables when path is empty
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(raw)
}

// Parse decodes and validates TOML seed tables
func Parse(raw []byte) (*Data, error) {
	var data Data
	if _, err := toml.Decode(string(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

// Validate checks the invariants the services rely on
func (d *Data) Validate() error {
	seen := make(map[int]bool, len(d.Sentences))
	for _, s := range d.Sentences {
		if s.ID < 1 {
			return fmt.Errorf("sentence id must be >= 1, got %d", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate sentence id %d", s.ID)
		}
		seen[s.ID] = true

		if s.DifficultyLevel < 1 || s.DifficultyLevel > 5 {
			return fmt.Errorf("sentence %d: difficulty level %d out of range 1-5", s.ID, s.DifficultyLevel)
		}
	}

	for i, c := range d.Contributors {
		if c.Rank != i+1 {
			return fmt.Errorf("contributor %s: expected rank %d, got %d", c.Email, i+1, c.Rank)
		}
		if c.ContributionCount < 0 {
			return fmt.Errorf("contributor %s: negative contribution count", c.Email)
		}
		if i > 0 && c.ContributionCount > d.Contributors[i-1].ContributionCount {
			return fmt.Errorf("contributor %s: contributors must be ordered by contribution count", c.Email)
		}
	}

	for _, p := range d.AIPhrases {
		if p.Difficulty < 1 || p.Difficulty > 5 {
			return fmt.Errorf("phrase %q: difficulty %d out of range 1-5", p.Phrase, p.Difficulty)
		}
	}

	if len(d.AIPhrases) == 0 {
		return fmt.Errorf("phrase table is empty")
	}

	return nil
}

// Contributions builds one seed contribution per sentence, in sentence order.
// Demographics and moderation state are random but always a valid combination.
func Contributions(sentences []models.Sentence) []models.Contribution {
	contributions := make([]models.Contribution, 0, len(sentences))

	for i, s := range sentences {
		email := fmt.Sprintf("user%d@example.com", i+1)
		gender := utils.Choice(seedGenders)
		region := utils.Choice(seedRegions)

		audioURL := ""
		if s.AudioURL != nil {
			audioURL = *s.AudioURL
		}

		c := models.Contribution{
			KreyolText: s.KreyolText,
			AudioURL:   audioURL,
			Email:      &email,
			Gender:     &gender,
			Region:     &region,
			CreatedAt:  SeedContributionTime,
			UpdatedAt:  SeedContributionTime,
		}

		switch utils.Choice([]string{"pending", "approved", "rejected"}) {
		case "approved":
			c.IsApproved = true
		case "rejected":
			reason := seedRejectionReason
			c.RejectionReason = &reason
		}

		contributions = append(contributions, c)
	}

	return contributions
}
