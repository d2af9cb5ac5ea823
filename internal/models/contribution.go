package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Contribution is a submitted audio recording of a Kreyòl text.
//
// A contribution is pending (not approved, no reason), approved (no reason)
// or rejected (not approved, non-empty reason).
type Contribution struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	KreyolText      string    `gorm:"type:text;not null" json:"kreyolText"`
	AudioURL        string    `gorm:"size:500;not null" json:"audioUrl"`
	Email           *string   `gorm:"size:255" json:"email"`
	Gender          *string   `gorm:"size:20" json:"gender"`
	Region          *string   `gorm:"size:100" json:"region"`
	IsApproved      bool      `gorm:"default:false;index" json:"isApproved"`
	RejectionReason *string   `gorm:"size:500" json:"rejectionReason"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Contribution) TableName() string {
	return "contributions"
}

// Status returns the moderation state name
func (c *Contribution) Status() string {
	switch {
	case c.IsApproved:
		return "approved"
	case c.RejectionReason != nil:
		return "rejected"
	default:
		return "pending"
	}
}

// ContributionList is one page of contributions
type ContributionList struct {
	Items      []Contribution `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalItems int            `json:"totalItems"`
	TotalPages int            `json:"totalPages"`
}

// ModerationRequest is the body of PATCH /api/contributions/:id/approval
type ModerationRequest struct {
	Approved        *bool   `json:"approved" binding:"required"`
	RejectionReason *string `json:"rejectionReason"`
}
