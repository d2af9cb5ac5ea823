package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/models"

	"gorm.io/gorm"
)

// GormContributionRepository stores contributions in a SQL database.
// Auto-increment ids give insertion order.
type GormContributionRepository struct {
	db *gorm.DB
}

func NewGormContributionRepository(db *gorm.DB) *GormContributionRepository {
	return &GormContributionRepository{db: db}
}

// Create inserts a new contribution
func (r *GormContributionRepository) Create(ctx context.Context, c *models.Contribution) error {
	c.ID = 0
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID retrieves a contribution by ID
func (r *GormContributionRepository) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	var c models.Contribution
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves a page of contributions ordered by id
func (r *GormContributionRepository) List(
	ctx context.Context,
	includeUnapproved bool,
	offset int,
	limit int,
) ([]models.Contribution, int64, error) {
	scope := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Contribution{})
		if !includeUnapproved {
			query = query.Where("is_approved = ?", true)
		}
		return query
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []models.Contribution{}
	err := scope().
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateApproval updates the moderation fields inside a transaction
func (r *GormContributionRepository) UpdateApproval(
	ctx context.Context,
	id uint,
	approved bool,
	reason *string,
	at time.Time,
) (*models.Contribution, error) {
	var updated models.Contribution

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&updated).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Map form so a nil reason is written as NULL
		return tx.Model(&updated).Updates(map[string]interface{}{
			"is_approved":      approved,
			"rejection_reason": reason,
			"updated_at":       at,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Count returns the number of stored contributions
func (r *GormContributionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contribution{}).Count(&count).Error
	return count, err
}
