package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"path"
	"strings"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AllowedAudioExtensions lists the accepted upload extensions
var AllowedAudioExtensions = []string{".mp3", ".wav", ".webm", ".m4a"}

// SubmitContributionInput carries a multipart submission. Only the audio
// file name is inspected; its content is never stored.
type SubmitContributionInput struct {
	KreyolText    string
	AudioFilename string
	Email         string
	Gender        string
	Region        string
}

type ContributionService struct {
	repo         repository.ContributionRepository
	audioBaseURL string
	now          func() time.Time
}

func NewContributionService(repo repository.ContributionRepository, audioBaseURL string) *ContributionService {
	return &ContributionService{
		repo:         repo,
		audioBaseURL: strings.TrimRight(audioBaseURL, "/"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates the upload and stores a new pending contribution
func (s *ContributionService) Submit(ctx context.Context, in SubmitContributionInput) (*models.Contribution, error) {
	if in.AudioFilename == "" {
		return nil, validationErrorf("Audio file is required")
	}

	ext, ok := audioExtension(in.AudioFilename)
	if !ok {
		return nil, validationErrorf("Invalid file type. Allowed: %s", strings.Join(AllowedAudioExtensions, ", "))
	}

	if strings.TrimSpace(in.KreyolText) == "" {
		return nil, validationErrorf("kreyolText is required")
	}

	now := s.now()
	contribution := &models.Contribution{
		KreyolText: in.KreyolText,
		AudioURL:   fmt.Sprintf("%s/%s%s", s.audioBaseURL, uuid.New().String(), ext),
		Email:      optional(in.Email),
		Gender:     optional(in.Gender),
		Region:     optional(in.Region),
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, contribution); err != nil {
		return nil, fmt.Errorf("failed to create contribution: %w", err)
	}

	log.Printf("Contribution %d submitted (%s)", contribution.ID, in.AudioFilename)
	return contribution, nil
}

// List returns one page of contributions. Only approved contributions are
// listed unless includeUnapproved is set.
func (s *ContributionService) List(ctx context.Context, page, pageSize int, includeUnapproved bool) (*models.ContributionList, error) {
	if page < 1 {
		return nil, validationErrorf("page must be at least 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, validationErrorf("pageSize must be between 1 and %d", MaxPageSize)
	}

	// Pages too far out to address are simply past the end
	offset := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		offset = (page - 1) * pageSize
	}
	items, total, err := s.repo.List(ctx, includeUnapproved, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	totalItems := int(total)
	return &models.ContributionList{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + pageSize - 1) / pageSize,
	}, nil
}

// GetByID retrieves a contribution by ID
func (s *ContributionService) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	contribution, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Detail: "Contribution not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution: %w", err)
	}
	return contribution, nil
}

// Moderate approves or rejects a contribution. Rejecting requires a reason;
// approving always clears any previous reason.
func (s *ContributionService) Moderate(ctx context.Context, id uint, approved bool, rejectionReason *string) (*models.Contribution, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var reason *string
	if !approved {
		if rejectionReason == nil || *rejectionReason == "" {
			return nil, validationErrorf("Rejection reason is required when rejecting a contribution")
		}
		reason = rejectionReason
	}

	contribution, err := s.repo.UpdateApproval(ctx, id, approved, reason, s.now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Detail: "Contribution not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to moderate contribution: %w", err)
	}

	log.Printf("Contribution %d moderated: %s", id, contribution.Status())
	return contribution, nil
}

// audioExtension returns the lower-cased extension of name if it is allowed
func audioExtension(name string) (string, bool) {
	ext := strings.ToLower(path.Ext(name))
	for _, allowed := range AllowedAudioExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return "", false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
