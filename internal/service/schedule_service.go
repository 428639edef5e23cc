package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/calendar"
	"github.com/ghostwriterhq/scheduler/internal/models"
	"github.com/ghostwriterhq/scheduler/internal/repository"
	"github.com/ghostwriterhq/scheduler/internal/transfer"
)

// ScheduleService is the scheduled-post lifecycle: it turns a finalized
// draft plus a picked date and slot into a stored post, moves posts from
// Scheduled to Published, and exposes deletion and listing. Status only
// ever moves Scheduled -> Published; rescheduling is delete-and-recreate.
type ScheduleService interface {
	// Create validates and persists a new post. The returned duration is
	// the delay until its scheduled time, for deferred-publish enqueueing.
	Create(ctx context.Context, ownerID string, req *transfer.SchedulePost) (*models.ScheduledPost, time.Duration, error)

	// Publish dispatches the post to its platform now and, on success,
	// marks it Published and records the canonical URL. On failure the
	// stored status is untouched and the error is surfaced; no retry.
	Publish(ctx context.Context, ownerID, postID, platform, accessToken string) (*models.ScheduledPost, error)

	// Remove deletes the post unconditionally, regardless of status.
	Remove(ctx context.Context, ownerID, postID string) error

	// List returns the owner's posts sorted ascending by DateTime.
	List(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error)

	// Watch emits a sorted snapshot of the owner's posts every interval
	// until ctx is done. Pull-based; a push-capable store could feed the
	// same channel.
	Watch(ctx context.Context, ownerID string, interval time.Duration) <-chan []*models.ScheduledPost
}

type scheduleService struct {
	store      repository.PostStore
	dispatcher PublishDispatcher
	media      MediaService
	now        func() time.Time
}

func NewScheduleService(store repository.PostStore, dispatcher PublishDispatcher, media MediaService) ScheduleService {
	return &scheduleService{
		store:      store,
		dispatcher: dispatcher,
		media:      media,
		now:        time.Now,
	}
}

func (s *scheduleService) Create(ctx context.Context, ownerID string, req *transfer.SchedulePost) (*models.ScheduledPost, time.Duration, error) {
	if req == nil {
		return nil, 0, validationf("post creation data is nil")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, 0, validationf("content cannot be empty")
	}

	if !models.KnownPlatform(req.Platform) {
		return nil, 0, validationf("unknown platform %q", req.Platform)
	}

	date, err := time.Parse(calendar.DateLayout, req.Date)
	if err != nil {
		return nil, 0, validationf("invalid date %q", req.Date)
	}

	today := s.today()
	if date.Before(today) {
		return nil, 0, validationf("cannot schedule a post on a past date")
	}

	slot, ok := calendar.SlotByKey(req.TimeKey)
	if !ok {
		return nil, 0, validationf("unknown time slot %q", req.TimeKey)
	}

	dateTime, err := calendar.CombineDateTime(req.Date, slot)
	if err != nil {
		return nil, 0, validationf("%s", err.Error())
	}

	imageURL := req.ImageURL
	if imageURL != "" && s.media != nil {
		offloaded, err := s.media.OffloadImage(ctx, imageURL)
		if err != nil {
			// Offload is best effort; the inline reference still works.
			slog.Info("image offload failed, keeping inline reference", "error", err)
		} else {
			imageURL = offloaded
		}
	}

	post := &models.ScheduledPost{
		OwnerID:  ownerID,
		Platform: req.Platform,
		Content:  content,
		DateTime: dateTime,
		ImageURL: imageURL,
	}

	if _, err := s.store.Create(ctx, post); err != nil {
		return nil, 0, &PersistenceError{Msg: "failed to schedule post", Err: err}
	}

	scheduledAt, _ := time.Parse(calendar.DateTimeLayout, dateTime)
	delay := scheduledAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	return post, delay, nil
}

func (s *scheduleService) Publish(ctx context.Context, ownerID, postID, platform, accessToken string) (*models.ScheduledPost, error) {
	post, err := s.store.GetByID(ctx, ownerID, postID)
	if err != nil {
		return nil, &PersistenceError{Msg: "failed to load post", Err: err}
	}
	if post == nil {
		return nil, &PersistenceError{Msg: "post doesn't exist"}
	}

	if platform != "" && platform != post.Platform {
		return nil, validationf("post %s is a %s post, not %s", postID, post.Platform, platform)
	}

	if post.Status == models.PostStatusPublished {
		// Published is terminal; never dispatch twice.
		return nil, validationf("post is already published")
	}

	dispatch := &transfer.PublishDispatch{
		OwnerID: ownerID,
		PostID:  postID,
	}
	switch post.Platform {
	case models.PlatformFacebook, models.PlatformThreads:
		if accessToken == "" {
			return nil, &PublishError{Msg: "an access token is required to publish to " + post.Platform}
		}
		dispatch.AccessToken = accessToken
	}

	publishedURL, err := s.dispatcher.Publish(ctx, post.Platform, dispatch)
	if err != nil {
		return nil, &PublishError{Msg: "failed to publish to " + post.Platform, Err: err}
	}

	if err := s.store.SetPublished(ctx, ownerID, postID, post.Platform, publishedURL); err != nil {
		return nil, &PersistenceError{Msg: "failed to record publish result", Err: err}
	}

	post.Status = models.PostStatusPublished
	switch post.Platform {
	case models.PlatformWordpress:
		post.WordpressURL = publishedURL
	case models.PlatformFacebook:
		post.FacebookURL = publishedURL
	case models.PlatformThreads:
		post.ThreadsURL = publishedURL
	}
	return post, nil
}

func (s *scheduleService) Remove(ctx context.Context, ownerID, postID string) error {
	err := s.store.Remove(ctx, ownerID, postID)
	if err == repository.ErrNotFound {
		return &PersistenceError{Msg: "post doesn't exist"}
	}
	if err != nil {
		return &PersistenceError{Msg: "failed to remove post", Err: err}
	}
	return nil
}

func (s *scheduleService) List(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error) {
	posts, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &PersistenceError{Msg: "failed to list posts", Err: err}
	}
	return posts, nil
}

func (s *scheduleService) Watch(ctx context.Context, ownerID string, interval time.Duration) <-chan []*models.ScheduledPost {
	out := make(chan []*models.ScheduledPost)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			posts, err := s.List(ctx, ownerID)
			if err != nil {
				slog.Info(err.Error())
			} else {
				select {
				case out <- posts:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (s *scheduleService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
