package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/models"
)

// ErrNotFound is returned when no contribution has the requested id
var ErrNotFound = errors.New("contribution not found")

// ContributionRepository stores contributions in insertion order
type ContributionRepository interface {
	// Create assigns a fresh id to c and appends it
	Create(ctx context.Context, c *models.Contribution) error
	GetByID(ctx context.Context, id uint) (*models.Contribution, error)
	// List returns a window of the contributions in insertion order along
	// with the total number of contributions matching the filter
	List(ctx context.Context, includeUnapproved bool, offset, limit int) ([]models.Contribution, int64, error)
	// UpdateApproval sets the moderation fields of one contribution atomically
	UpdateApproval(ctx context.Context, id uint, approved bool, reason *string, at time.Time) (*models.Contribution, error)
	Count(ctx context.Context) (int64, error)
}

// SeedIfEmpty inserts the seed contributions when the store has none
func SeedIfEmpty(ctx context.Context, repo ContributionRepository, contributions []models.Contribution) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count contributions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range contributions {
		c := contributions[i]
		c.ID = 0
		if err := repo.Create(ctx, &c); err != nil {
			return i, fmt.Errorf("failed to seed contribution %d: %w", i+1, err)
		}
	}

	return len(contributions), nil
}
