package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/models"
)

// MemoryContributionRepository keeps contributions in process memory.
// Records are copied in and out so callers never share stored state.
type MemoryContributionRepository struct {
	mu            sync.RWMutex
	contributions []models.Contribution
	nextID        uint
}

func NewMemoryContributionRepository() *MemoryContributionRepository {
	return &MemoryContributionRepository{nextID: 1}
}

// Create assigns the next id and appends the contribution
func (r *MemoryContributionRepository) Create(ctx context.Context, c *models.Contribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.contributions = append(r.contributions, cloneContribution(*c))
	return nil
}

// GetByID retrieves a contribution by ID
func (r *MemoryContributionRepository) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	c := cloneContribution(r.contributions[i])
	return &c, nil
}

// List returns a page of contributions in insertion order
func (r *MemoryContributionRepository) List(
	ctx context.Context,
	includeUnapproved bool,
	offset int,
	limit int,
) ([]models.Contribution, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.Contribution{}
	var total int64

	for _, c := range r.contributions {
		if !includeUnapproved && !c.IsApproved {
			continue
		}
		if total >= int64(offset) && len(items) < limit {
			items = append(items, cloneContribution(c))
		}
		total++
	}

	return items, total, nil
}

// UpdateApproval updates moderation fields under the write lock
func (r *MemoryContributionRepository) UpdateApproval(
	ctx context.Context,
	id uint,
	approved bool,
	reason *string,
	at time.Time,
) (*models.Contribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	c := &r.contributions[i]
	c.IsApproved = approved
	c.RejectionReason = cloneString(reason)
	c.UpdatedAt = at

	updated := cloneContribution(*c)
	return &updated, nil
}

// Count returns the number of stored contributions
func (r *MemoryContributionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.contributions)), nil
}

// indexOf must be called with the lock held
func (r *MemoryContributionRepository) indexOf(id uint) int {
	for i := range r.contributions {
		if r.contributions[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneContribution(c models.Contribution) models.Contribution {
	c.Email = cloneString(c.Email)
	c.Gender = cloneString(c.Gender)
	c.Region = cloneString(c.Region)
	c.RejectionReason = cloneString(c.RejectionReason)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
