package services

import (
	"github.com/rafreid/palefo-mock-api/internal/models"

	"github.com/shopspring/decimal"
)

// secondsPerContribution is the assumed average recording length
const secondsPerContribution = 3

// StatisticsService derives platform statistics from the contributor table.
// It does not look at the contributions store.
type StatisticsService struct {
	contributors []models.Contributor
}

func NewStatisticsService(contributors []models.Contributor) *StatisticsService {
	return &StatisticsService{contributors: contributors}
}

// GetStatistics returns totals with audio hours rounded to 2 decimal places
func (s *StatisticsService) GetStatistics() models.Statistics {
	total := 0
	for _, c := range s.contributors {
		total += c.ContributionCount
	}

	hours := decimal.NewFromInt(int64(total * secondsPerContribution)).
		Div(decimal.NewFromInt(3600)).
		Round(2)

	return models.Statistics{
		TotalContributions: total,
		UniqueContributors: len(s.contributors),
		TotalAudioHours:    hours.InexactFloat64(),
	}
}
