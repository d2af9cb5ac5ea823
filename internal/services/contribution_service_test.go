package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/repository"
)

const testAudioBaseURL = "https://example.blob.core.windows.net/audio"

func newTestContributionService(t *testing.T, seeded []models.Contribution) (*ContributionService, *repository.MemoryContributionRepository) {
	t.Helper()
	repo := repository.NewMemoryContributionRepository()
	if _, err := repository.SeedIfEmpty(context.Background(), repo, seeded); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	service := NewContributionService(repo, testAudioBaseURL+"/")
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return service, repo
}

func submitInput(filename string) SubmitContributionInput {
	return SubmitContributionInput{
		KreyolText:    "Bonjou, kijan ou ye?",
		AudioFilename: filename,
		Email:         "tester@example.com",
		Region:        "Jacmel",
	}
}

func TestSubmitCreatesPendingContribution(t *testing.T) {
	service, _ := newTestContributionService(t, nil)
	ctx := context.Background()

	c, err := service.Submit(ctx, submitInput("clip.MP3"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if c.ID != 1 {
		t.Errorf("expected id 1, got %d", c.ID)
	}
	if c.IsApproved || c.RejectionReason != nil || c.Status() != "pending" {
		t.Errorf("expected pending contribution, got %+v", c)
	}
	if !strings.HasPrefix(c.AudioURL, testAudioBaseURL+"/") || !strings.HasSuffix(c.AudioURL, ".mp3") {
		t.Errorf("unexpected audio url %q", c.AudioURL)
	}
	if c.Email == nil || *c.Email != "tester@example.com" {
		t.Errorf("unexpected email %v", c.Email)
	}
	if c.Gender != nil {
		t.Errorf("expected empty gender to be nil, got %q", *c.Gender)
	}
	if !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt, got %v and %v", c.CreatedAt, c.UpdatedAt)
	}

	second, err := service.Submit(ctx, submitInput("clip.wav"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("expected id 2, got %d", second.ID)
	}
	if second.AudioURL == c.AudioURL {
		t.Errorf("expected unique audio urls, both were %q", c.AudioURL)
	}
}

func TestSubmitValidation(t *testing.T) {
	service, repo := newTestContributionService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		input  SubmitContributionInput
		detail string
	}{
		{name: "missing file", input: submitInput(""), detail: "Audio file is required"},
		{name: "ogg", input: submitInput("clip.ogg"), detail: "Invalid file type. Allowed: .mp3, .wav, .webm, .m4a"},
		{name: "no extension", input: submitInput("clip"), detail: "Invalid file type. Allowed: .mp3, .wav, .webm, .m4a"},
		{name: "bare extension", input: submitInput("mp3"), detail: "Invalid file type. Allowed: .mp3, .wav, .webm, .m4a"},
		{
			name:   "blank text",
			input:  SubmitContributionInput{KreyolText: "  \t", AudioFilename: "clip.mp3"},
			detail: "kreyolText is required",
		},
		{
			name:   "missing text",
			input:  SubmitContributionInput{AudioFilename: "clip.m4a"},
			detail: "kreyolText is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Submit(ctx, tt.input)
			assertValidationError(t, err, tt.detail)
		})
	}

	if count, _ := repo.Count(ctx); count != 0 {
		t.Errorf("rejected submissions were stored: count %d", count)
	}

	for _, name := range []string{"a.mp3", "b.WAV", "c.webm", "d.M4a"} {
		if _, err := service.Submit(ctx, submitInput(name)); err != nil {
			t.Errorf("Submit(%q) failed: %v", name, err)
		}
	}
}

func TestListContributions(t *testing.T) {
	seeded := make([]models.Contribution, 0, 25)
	for i := 0; i < 25; i++ {
		c := models.Contribution{KreyolText: "c", AudioURL: "u", IsApproved: i%5 != 0}
		if i%5 == 0 && i%10 == 0 {
			c.RejectionReason = strPtr("noisy")
		}
		seeded = append(seeded, c)
	}
	service, _ := newTestContributionService(t, seeded)
	ctx := context.Background()

	public, err := service.List(ctx, 1, 20, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if public.TotalItems != 20 || public.TotalPages != 1 || len(public.Items) != 20 {
		t.Errorf("unexpected public page: total=%d pages=%d items=%d", public.TotalItems, public.TotalPages, len(public.Items))
	}
	for _, c := range public.Items {
		if !c.IsApproved {
			t.Errorf("unapproved contribution %d in public listing", c.ID)
		}
	}

	all, err := service.List(ctx, 2, 10, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if all.TotalItems != 25 || all.TotalPages != 3 || all.Page != 2 || all.PageSize != 10 {
		t.Errorf("unexpected metadata: %+v", all)
	}
	if len(all.Items) != 10 || all.Items[0].ID != 11 {
		t.Errorf("expected items 11..20, got %d items starting at %d", len(all.Items), all.Items[0].ID)
	}

	beyond, err := service.List(ctx, 9, 10, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(beyond.Items) != 0 || beyond.TotalItems != 25 {
		t.Errorf("expected empty page with totals, got %+v", beyond)
	}

	huge, err := service.List(ctx, math.MaxInt/10+2, 100, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(huge.Items) != 0 || huge.TotalItems != 25 || huge.TotalPages != 1 {
		t.Errorf("expected empty page with totals for a huge page, got %+v", huge)
	}

	_, err = service.List(ctx, 0, 10, false)
	assertValidationError(t, err, "")
	_, err = service.List(ctx, 1, 101, false)
	assertValidationError(t, err, "")
}

func TestListEmptyStore(t *testing.T) {
	service, _ := newTestContributionService(t, nil)

	list, err := service.List(context.Background(), 1, 20, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list.TotalItems != 0 || list.TotalPages != 0 || list.Items == nil {
		t.Errorf("unexpected empty listing: %+v", list)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	service, _ := newTestContributionService(t, nil)

	_, err := service.GetByID(context.Background(), 7)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Detail != "Contribution not found" {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestGetByIDIsIdempotent(t *testing.T) {
	service, _ := newTestContributionService(t, nil)
	ctx := context.Background()

	created, err := service.Submit(ctx, submitInput("clip.mp3"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	first, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	second, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if first.ID != second.ID || first.AudioURL != second.AudioURL || first.IsApproved != second.IsApproved ||
		!first.UpdatedAt.Equal(second.UpdatedAt) || *first.Email != *second.Email {
		t.Errorf("records differ: %+v vs %+v", first, second)
	}
}

func TestModerateStateMachine(t *testing.T) {
	service, _ := newTestContributionService(t, nil)
	ctx := context.Background()

	created, err := service.Submit(ctx, submitInput("clip.mp3"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	_, err = service.Moderate(ctx, created.ID, false, nil)
	assertValidationError(t, err, "Rejection reason is required when rejecting a contribution")
	_, err = service.Moderate(ctx, created.ID, false, strPtr(""))
	assertValidationError(t, err, "Rejection reason is required when rejecting a contribution")

	rejected, err := service.Moderate(ctx, created.ID, false, strPtr("noisy"))
	if err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if rejected.IsApproved || rejected.RejectionReason == nil || *rejected.RejectionReason != "noisy" {
		t.Errorf("expected rejected with reason, got %+v", rejected)
	}
	if !rejected.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("expected updatedAt to advance, got %v", rejected.UpdatedAt)
	}

	approved, err := service.Moderate(ctx, created.ID, true, strPtr("ignored"))
	if err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	if !approved.IsApproved || approved.RejectionReason != nil {
		t.Errorf("expected approved without reason, got %+v", approved)
	}
	if !approved.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed from %v to %v", created.CreatedAt, approved.CreatedAt)
	}
}

func TestModerateUnknownID(t *testing.T) {
	service, _ := newTestContributionService(t, nil)

	// Not-found wins over the missing reason
	_, err := service.Moderate(context.Background(), 99, false, nil)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
