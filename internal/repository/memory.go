package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// memoryStore keeps posts per owner in process memory. Used by tests and
// the local single-user mode.
type memoryStore struct {
	mu    sync.Mutex
	posts map[string][]*models.ScheduledPost // ownerID -> posts
}

func NewMemoryStore() PostStore {
	return &memoryStore{posts: make(map[string][]*models.ScheduledPost)}
}

func (s *memoryStore) Create(ctx context.Context, post *models.ScheduledPost) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	stored := *post
	stored.ID = id
	stored.Status = models.PostStatusScheduled
	stored.CreatedAt = time.Now()

	s.mu.Lock()
	s.posts[stored.OwnerID] = append(s.posts[stored.OwnerID], &stored)
	s.mu.Unlock()

	*post = stored
	return id, nil
}

func (s *memoryStore) GetByID(ctx context.Context, ownerID, postID string) (*models.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts[ownerID] {
		if p.ID == postID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) ListByOwner(ctx context.Context, ownerID string) ([]*models.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.ScheduledPost, 0, len(s.posts[ownerID]))
	for _, p := range s.posts[ownerID] {
		cp := *p
		out = append(out, &cp)
	}
	sortByDateTime(out)
	return out, nil
}

func (s *memoryStore) ListDueWordpress(ctx context.Context, cutoff string) ([]*models.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.ScheduledPost
	for _, posts := range s.posts {
		for _, p := range posts {
			if p.Platform == models.PlatformWordpress &&
				p.Status == models.PostStatusScheduled &&
				p.DateTime <= cutoff {
				cp := *p
				out = append(out, &cp)
			}
		}
	}
	sortByDateTime(out)
	return out, nil
}

func (s *memoryStore) SetPublished(ctx context.Context, ownerID, postID, platform, publishedURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts[ownerID] {
		if p.ID == postID {
			p.Status = models.PostStatusPublished
			setPublishedURL(p, platform, publishedURL)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) Remove(ctx context.Context, ownerID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.posts[ownerID]
	for i, p := range posts {
		if p.ID == postID {
			s.posts[ownerID] = append(posts[:i], posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// sortByDateTime orders ascending by the naive timestamp. The fixed layout
// makes lexicographic order equal to chronological order.
func sortByDateTime(posts []*models.ScheduledPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].DateTime < posts[j].DateTime
	})
}

func setPublishedURL(p *models.ScheduledPost, platform, url string) {
	switch platform {
	case models.PlatformWordpress:
		p.WordpressURL = url
	case models.PlatformFacebook:
		p.FacebookURL = url
	case models.PlatformThreads:
		p.ThreadsURL = url
	}
}
