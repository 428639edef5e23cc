package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
)

// redisStore holds each owner's posts as a single JSON array under
// scheduled_posts:<ownerID>, mirroring the per-owner list shape of the
// local cache store variant.
type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) PostStore {
	return &redisStore{rdb: rdb}
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("scheduled_posts:%s", ownerID)
}

const ownersKey = "scheduled_posts:owners"

func (s *redisStore) load(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error) {
	raw, err := s.rdb.Get(ctx, ownerKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	var posts []*models.ScheduledPost
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (s *redisStore) save(ctx context.Context, ownerID string, posts []*models.ScheduledPost) error {
	// Dropping the last post retires the owner entirely, so the sweep scan
	// over ownersKey never revisits emptied lists.
	if len(posts) == 0 {
		if err := s.rdb.Del(ctx, ownerKey(ownerID)).Err(); err != nil {
			slog.Info(err.Error())
			return err
		}
		return s.rdb.SRem(ctx, ownersKey, ownerID).Err()
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, ownerKey(ownerID), raw, 0).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return s.rdb.SAdd(ctx, ownersKey, ownerID).Err()
}

func (s *redisStore) Create(ctx context.Context, post *models.ScheduledPost) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	posts, err := s.load(ctx, post.OwnerID)
	if err != nil {
		return "", err
	}

	stored := *post
	stored.ID = id
	stored.Status = models.PostStatusScheduled
	stored.CreatedAt = time.Now()

	posts = append(posts, &stored)
	if err := s.save(ctx, post.OwnerID, posts); err != nil {
		return "", err
	}

	*post = stored
	return id, nil
}

func (s *redisStore) GetByID(ctx context.Context, ownerID, postID string) (*models.ScheduledPost, error) {
	posts, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		if p.ID == postID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *redisStore) ListByOwner(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error) {
	posts, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sortByDateTime(posts)
	return posts, nil
}

func (s *redisStore) ListDueWordpress(ctx context.Context, cutoff string) ([]*models.ScheduledPost, error) {
	owners, err := s.rdb.SMembers(ctx, ownersKey).Result()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	var out []*models.ScheduledPost
	for _, ownerID := range owners {
		posts, err := s.load(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			if p.Platform == models.PlatformWordpress &&
				p.Status == models.PostStatusScheduled &&
				p.DateTime <= cutoff {
				out = append(out, p)
			}
		}
	}
	sortByDateTime(out)
	return out, nil
}

func (s *redisStore) SetPublished(ctx context.Context, ownerID, postID, platform, publishedURL string) error {
	posts, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.ID == postID {
			p.Status = models.PostStatusPublished
			setPublishedURL(p, platform, publishedURL)
			return s.save(ctx, ownerID, posts)
		}
	}
	return ErrNotFound
}

func (s *redisStore) Remove(ctx context.Context, ownerID, postID string) error {
	posts, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}
	for i, p := range posts {
		if p.ID == postID {
			return s.save(ctx, ownerID, append(posts[:i], posts[i+1:]...))
		}
	}
	return ErrNotFound
}
