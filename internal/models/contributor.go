package models

// Contributor is a leaderboard entry. The seed table is ordered by Rank.
type Contributor struct {
	Email             string  `toml:"email" json:"email"`
	ContributionCount int     `toml:"contribution_count" json:"contributionCount"`
	Rank              int     `toml:"rank" json:"rank"`
	Gender            *string `toml:"gender" json:"gender"`
	Region            *string `toml:"region" json:"region"`
}

// Statistics holds the platform-wide counters served by /api/statistics
type Statistics struct {
	TotalContributions int     `json:"totalContributions"`
	UniqueContributors int     `json:"uniqueContributors"`
	TotalAudioHours    float64 `json:"totalAudioHours"`
}
