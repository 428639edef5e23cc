package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/calendar"
	"github.com/ghostwriterhq/scheduler/internal/queue"
	"github.com/ghostwriterhq/scheduler/internal/repository"
	"github.com/hibiken/asynq"
)

// PublishSweepJob re-enqueues overdue wordpress posts that are still
// Scheduled. Deferred publish tasks live in Redis; this sweep covers posts
// whose task was lost across a restart or flush.
type PublishSweepJob struct {
	store  repository.PostStore
	client *asynq.Client
}

func NewPublishSweepJob(store repository.PostStore, client *asynq.Client) *PublishSweepJob {
	return &PublishSweepJob{store: store, client: client}
}

func (j *PublishSweepJob) SweepOverdue() {
	ctx := context.Background()

	cutoff := time.Now().Format(calendar.DateTimeLayout)
	posts, err := j.store.ListDueWordpress(ctx, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, post := range posts {
		payload := queue.PublishPostPayload{
			OwnerID:  post.OwnerID,
			PostID:   post.ID,
			Platform: post.Platform,
		}
		if err := queue.EnqueuePost(j.client, payload, 0); err != nil {
			slog.Info(err.Error())
		}
	}
}
