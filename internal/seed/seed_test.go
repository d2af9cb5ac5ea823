package seed

import (
	"strings"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	data, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if len(data.Sentences) != 13 {
		t.Errorf("expected 13 sentences, got %d", len(data.Sentences))
	}
	if len(data.Contributors) != 10 {
		t.Errorf("expected 10 contributors, got %d", len(data.Contributors))
	}
	if len(data.AIPhrases) != 5 {
		t.Errorf("expected 5 phrases, got %d", len(data.AIPhrases))
	}

	first := data.Sentences[0]
	if first.KreyolText != "Bonjou, kijan ou ye?" || first.Category == nil || *first.Category != "greetings" {
		t.Errorf("unexpected first sentence: %+v", first)
	}

	if data.Contributors[0].Email != "contributor1@example.com" || data.Contributors[0].ContributionCount != 15000 {
		t.Errorf("unexpected top contributor: %+v", data.Contributors[0])
	}
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "duplicate sentence id",
			raw: `
[[sentences]]
id = 1
kreyol_text = "a"
difficulty_level = 1
[[sentences]]
id = 1
kreyol_text = "b"
difficulty_level = 1
[[ai_phrases]]
phrase = "x"
difficulty = 1
`,
			want: "duplicate sentence id",
		},
		{
			name: "difficulty out of range",
			raw: `
[[sentences]]
id = 1
kreyol_text = "a"
difficulty_level = 9
`,
			want: "out of range",
		},
		{
			name: "rank gap",
			raw: `
[[contributors]]
email = "a@example.com"
rank = 2
[[ai_phrases]]
phrase = "x"
difficulty = 1
`,
			want: "expected rank 1",
		},
		{
			name: "empty phrase table",
			raw:  ``,
			want: "phrase table is empty",
		},
		{
			name: "malformed toml",
			raw:  `[[sentences`,
			want: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestContributionsAreValid(t *testing.T) {
	data, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	// Moderation state is random, so check over several rounds
	for round := 0; round < 20; round++ {
		contributions := Contributions(data.Sentences)
		if len(contributions) != len(data.Sentences) {
			t.Fatalf("expected %d contributions, got %d", len(data.Sentences), len(contributions))
		}

		for i, c := range contributions {
			if c.KreyolText != data.Sentences[i].KreyolText {
				t.Errorf("contribution %d: text %q does not follow sentence order", i, c.KreyolText)
			}
			if c.IsApproved && c.RejectionReason != nil {
				t.Errorf("contribution %d: approved with rejection reason", i)
			}
			if c.RejectionReason != nil && *c.RejectionReason == "" {
				t.Errorf("contribution %d: empty rejection reason", i)
			}
			if !c.CreatedAt.Equal(SeedContributionTime) || !c.UpdatedAt.Equal(SeedContributionTime) {
				t.Errorf("contribution %d: unexpected timestamps", i)
			}
		}
	}
}
