package services

import "github.com/rafreid/palefo-mock-api/internal/models"

const (
	MinContributorLimit = 1
	MaxContributorLimit = 100
)

type ContributorService struct {
	contributors []models.Contributor
}

func NewContributorService(contributors []models.Contributor) *ContributorService {
	return &ContributorService{contributors: contributors}
}

// TopContributors returns the first limit entries in rank order
func (s *ContributorService) TopContributors(limit int) ([]models.Contributor, error) {
	if limit < MinContributorLimit || limit > MaxContributorLimit {
		return nil, validationErrorf("limit must be between %d and %d", MinContributorLimit, MaxContributorLimit)
	}

	if limit > len(s.contributors) {
		limit = len(s.contributors)
	}

	top := make([]models.Contributor, limit)
	copy(top, s.contributors[:limit])
	return top, nil
}
