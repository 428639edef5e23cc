package repository

import (
	"context"
	"errors"

	"github.com/ghostwriterhq/scheduler/internal/models"
)

// ErrNotFound is returned when an operation names a post the store does not
// hold for that owner.
var ErrNotFound = errors.New("scheduled post not found")

// PostStore is the persistence boundary for scheduled posts. The store owns
// id and created-at assignment; every operation is scoped to a single owner.
// Backends: Postgres for deployments, Redis for the per-owner JSON-array
// cache variant, memory for tests and local mode.
type PostStore interface {
	// Create persists the post, assigning ID and CreatedAt and forcing
	// Status to Scheduled. Returns the assigned id.
	Create(ctx context.Context, post *models.ScheduledPost) (string, error)

	// GetByID returns the owner's post, or (nil, nil) when absent.
	GetByID(ctx context.Context, ownerID, postID string) (*models.ScheduledPost, error)

	// ListByOwner returns the owner's posts ordered ascending by DateTime.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error)

	// ListDueWordpress returns still-Scheduled wordpress posts across all
	// owners whose DateTime is at or before the cutoff timestamp.
	ListDueWordpress(ctx context.Context, cutoff string) ([]*models.ScheduledPost, error)

	// SetPublished marks the post Published and records the canonical URL
	// under the platform's URL field. ErrNotFound when the post is absent.
	SetPublished(ctx context.Context, ownerID, postID, platform, publishedURL string) error

	// Remove deletes the post unconditionally, regardless of status.
	// ErrNotFound when the post is absent.
	Remove(ctx context.Context, ownerID, postID string) error
}
